package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "github.com/toeirei/genpwd/internal/config"
)

func ptr[T any](v T) *T { return &v }

func mustParse(t *testing.T, content string) *cfg.Source {
	t.Helper()
	src, err := cfg.Parse(strings.NewReader(content), "config")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return src
}

var testEnv = cfg.Environment{HomeDir: "/home/alice", AppName: "genpwd"}

func TestParse_TrimsAndSkipsBlankLines(t *testing.T) {
	src := mustParse(t, "  PREFIX =  foo bar \n\nSUFFIX=.\n")
	if src.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", src.Len())
	}
	e, ok := src.Lookup("PREFIX")
	if !ok || e.Value != "foo bar" || e.Line != 1 {
		t.Fatalf("unexpected PREFIX entry: %+v ok=%v", e, ok)
	}
	e, ok = src.Lookup("SUFFIX")
	if !ok || e.Line != 3 {
		t.Fatalf("unexpected SUFFIX entry: %+v ok=%v", e, ok)
	}
	if !src.Present() {
		t.Fatalf("parsed source must be present")
	}
}

func TestParse_KeysAreCaseSensitive(t *testing.T) {
	src := mustParse(t, "prefix=a\nPREFIX=b\n")
	if e, _ := src.Lookup("PREFIX"); e.Value != "b" {
		t.Fatalf("expected b, got %q", e.Value)
	}
	if e, _ := src.Lookup("prefix"); e.Value != "a" {
		t.Fatalf("expected a, got %q", e.Value)
	}
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"three fields", "PREFIX=x\nA=B=C\n", 2},
		{"no delimiter", "JUSTAKEY\n", 1},
		{"empty key", "\n\n = value\n", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cfg.Parse(strings.NewReader(tc.content), "config")
			if !errors.Is(err, cfg.ErrMalformedConfigLine) {
				t.Fatalf("expected ErrMalformedConfigLine, got %v", err)
			}
			var mle *cfg.MalformedLineError
			if !errors.As(err, &mle) || mle.Line != tc.line {
				t.Fatalf("expected line %d, got %+v", tc.line, mle)
			}
		})
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := cfg.Parse(strings.NewReader("KEY=1\nKEY=2\n"), "config")
	if !errors.Is(err, cfg.ErrDuplicateConfigKey) {
		t.Fatalf("expected ErrDuplicateConfigKey, got %v", err)
	}
	var dke *cfg.DuplicateKeyError
	if !errors.As(err, &dke) {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
	if dke.Line != 2 || dke.First != 1 || dke.Key != "KEY" {
		t.Fatalf("unexpected duplicate error: %+v", dke)
	}
	if !strings.Contains(err.Error(), "config:2") {
		t.Fatalf("error should name path and line: %v", err)
	}
}

func TestLoadSource_MissingFileIsEmpty(t *testing.T) {
	src, err := cfg.LoadSource(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatalf("LoadSource returned error: %v", err)
	}
	if src.Present() || src.Len() != 0 {
		t.Fatalf("expected empty absent source, got %+v", src)
	}
}

func TestLoadSource_DirectoryIsUnavailable(t *testing.T) {
	_, err := cfg.LoadSource(t.TempDir())
	if !errors.Is(err, cfg.ErrConfigUnavailable) {
		t.Fatalf("expected ErrConfigUnavailable, got %v", err)
	}
}

func TestLoadSource_ReadsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(p, []byte("PREFIX=bar\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	src, err := cfg.LoadSource(p)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if e, ok := src.Lookup("PREFIX"); !ok || e.Value != "bar" {
		t.Fatalf("expected PREFIX=bar, got %+v", e)
	}
}

func TestResolve_PrefixPrecedence(t *testing.T) {
	persisted := mustParse(t, "PREFIX=bar\n")

	got, err := cfg.Resolve(cfg.Params{Prefix: ptr("foo")}, persisted, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Prefix == nil || *got.Prefix != "foo" {
		t.Fatalf("explicit must win, got %v", got.Prefix)
	}

	got, err = cfg.Resolve(cfg.Params{}, persisted, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Prefix == nil || *got.Prefix != "bar" {
		t.Fatalf("persisted must win over default, got %v", got.Prefix)
	}

	got, err = cfg.Resolve(cfg.Params{}, nil, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Prefix != nil {
		t.Fatalf("expected absent prefix, got %q", *got.Prefix)
	}
}

func TestResolve_Defaults(t *testing.T) {
	got, err := cfg.Resolve(cfg.Params{}, &cfg.Source{}, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Words != 3 {
		t.Fatalf("expected 3 words, got %d", got.Words)
	}
	wantShared := filepath.Join("/home/alice", ".config", "genpwd")
	if got.SharedPath != wantShared {
		t.Fatalf("expected shared path %s, got %s", wantShared, got.SharedPath)
	}
	if got.CorpusPath != filepath.Join(wantShared, "wordlist") {
		t.Fatalf("unexpected corpus path %s", got.CorpusPath)
	}
	if got.Suffix != nil || got.Interactive || got.QRCode || got.Copy {
		t.Fatalf("unexpected non-default values: %+v", got)
	}
	if got.Language != "en" {
		t.Fatalf("expected en, got %s", got.Language)
	}
}

func TestResolve_PersistedTypedValues(t *testing.T) {
	persisted := mustParse(t, "WORDS=5\nINTERACTIVE=true\nSHARED_PATH=/srv/words\nQR_CODE=1\n")
	got, err := cfg.Resolve(cfg.Params{}, persisted, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Words != 5 || !got.Interactive || !got.QRCode {
		t.Fatalf("persisted values not applied: %+v", got)
	}
	if got.CorpusPath != filepath.Join("/srv/words", "wordlist") {
		t.Fatalf("unexpected corpus path %s", got.CorpusPath)
	}

	got, err = cfg.Resolve(cfg.Params{Words: ptr(uint(0)), Interactive: ptr(false)}, persisted, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Words != 0 || got.Interactive {
		t.Fatalf("explicit zero values must win: %+v", got)
	}
}

func TestResolve_LowercasePersistedKeyIsIgnored(t *testing.T) {
	got, err := cfg.Resolve(cfg.Params{}, mustParse(t, "prefix=bar\nwords=9\n"), testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Prefix != nil || got.Words != 3 {
		t.Fatalf("lower-case keys must not match: %+v", got)
	}
}

func TestResolve_InvalidPersistedValue(t *testing.T) {
	for _, content := range []string{"WORDS=many\n", "WORDS=-1\n", "COPY=perhaps\n"} {
		_, err := cfg.Resolve(cfg.Params{}, mustParse(t, content), testEnv)
		if !errors.Is(err, cfg.ErrInvalidConfigValue) {
			t.Fatalf("%q: expected ErrInvalidConfigValue, got %v", content, err)
		}
	}
}

func TestResolve_ExplicitSpacesBecomeUnderscores(t *testing.T) {
	persisted := mustParse(t, "SUFFIX=a b\n")
	got, err := cfg.Resolve(cfg.Params{Prefix: ptr("my pre\tfix ")}, persisted, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if *got.Prefix != "my_pre\tfix_" {
		t.Fatalf("unexpected normalized prefix %q", *got.Prefix)
	}
	if *got.Suffix != "a b" {
		t.Fatalf("persisted values are not normalized, got %q", *got.Suffix)
	}
}

func TestResolved_Fields(t *testing.T) {
	got, err := cfg.Resolve(cfg.Params{Suffix: ptr(".")}, nil, testEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	fields := got.Fields()
	if fields[0].Key != "WORDS" || fields[0].Value != "3" {
		t.Fatalf("unexpected first field %+v", fields[0])
	}
	if fields[1].Key != "PREFIX" || fields[1].Set {
		t.Fatalf("prefix should be unset: %+v", fields[1])
	}
	if fields[2].Key != "SUFFIX" || !fields[2].Set || fields[2].Value != "." {
		t.Fatalf("unexpected suffix field %+v", fields[2])
	}
}

func TestWriteTemplate(t *testing.T) {
	env := cfg.Environment{HomeDir: t.TempDir()}
	path := env.ConfigPath()

	wrote, err := cfg.WriteTemplate(path, env)
	if err != nil || !wrote {
		t.Fatalf("WriteTemplate: wrote=%v err=%v", wrote, err)
	}
	src, err := cfg.LoadSource(path)
	if err != nil {
		t.Fatalf("template must parse: %v", err)
	}
	if e, ok := src.Lookup("WORDS"); !ok || e.Value != "3" {
		t.Fatalf("unexpected WORDS entry %+v", e)
	}

	wrote, err = cfg.WriteTemplate(path, env)
	if err != nil || wrote {
		t.Fatalf("second write must be a no-op: wrote=%v err=%v", wrote, err)
	}
}
