// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config resolves the effective settings of one genpwd invocation.
//
// Three layers are merged, highest precedence first: explicit parameters
// (command-line flags the user actually set), the persisted KEY=VALUE file,
// and built-in defaults. The persisted file is looked up by the upper-cased
// field name, so the field "shared_path" reads the key "SHARED_PATH".
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Field names. The persisted key of a field is strings.ToUpper(name).
const (
	KeyWords       = "words"
	KeyPrefix      = "prefix"
	KeySuffix      = "suffix"
	KeySharedPath  = "shared_path"
	KeyInteractive = "interactive"
	KeyQRCode      = "qr_code"
	KeyCopy        = "copy"
	KeyLanguage    = "language"
)

// Defaults.
const (
	DefaultAppName  = "genpwd"
	DefaultWords    = uint(3)
	DefaultLanguage = "en"

	CorpusFile = "wordlist"
	ConfigFile = "config"
)

// fields lists every resolvable field in display order.
var fields = []string{KeyWords, KeyPrefix, KeySuffix, KeySharedPath, KeyInteractive, KeyQRCode, KeyCopy, KeyLanguage}

var boolFields = map[string]bool{KeyInteractive: true, KeyQRCode: true, KeyCopy: true}

// PersistedKey returns the key a field is stored under in the persisted file.
func PersistedKey(field string) string { return strings.ToUpper(field) }

// Environment carries the process-level inputs the defaults depend on. It is
// passed explicitly so resolution never reads environment variables itself.
type Environment struct {
	HomeDir string
	AppName string
}

func (e Environment) appName() string {
	if e.AppName == "" {
		return DefaultAppName
	}
	return e.AppName
}

// DefaultSharedPath is <home>/.config/<app>.
func (e Environment) DefaultSharedPath() string {
	return filepath.Join(e.HomeDir, ".config", e.appName())
}

// ConfigPath is the persisted configuration file inside DefaultSharedPath.
func (e Environment) ConfigPath() string {
	return filepath.Join(e.DefaultSharedPath(), ConfigFile)
}

// Params are explicit invocation parameters. A nil field was not given.
type Params struct {
	Words       *uint
	Prefix      *string
	Suffix      *string
	SharedPath  *string
	Interactive *bool
	QRCode      *bool
	Copy        *bool
	Language    *string
}

// NormalizeExplicit replaces literal spaces with underscores. Other
// whitespace is left alone.
func NormalizeExplicit(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// Resolved is the merged configuration. It is built once and not modified.
type Resolved struct {
	Words       uint    `yaml:"words"`
	Prefix      *string `yaml:"prefix,omitempty"`
	Suffix      *string `yaml:"suffix,omitempty"`
	SharedPath  string  `yaml:"shared_path"`
	CorpusPath  string  `yaml:"corpus_path"`
	Interactive bool    `yaml:"interactive"`
	QRCode      bool    `yaml:"qr_code"`
	Copy        bool    `yaml:"copy"`
	Language    string  `yaml:"language"`
}

// Field is one displayable resolved value.
type Field struct {
	Key   string
	Value string
	Set   bool
}

// Fields returns the resolved values keyed by their persisted names.
func (r Resolved) Fields() []Field {
	opt := func(p *string) (string, bool) {
		if p == nil {
			return "", false
		}
		return *p, true
	}
	out := make([]Field, 0, len(fields))
	for _, name := range fields {
		f := Field{Key: PersistedKey(name), Set: true}
		switch name {
		case KeyWords:
			f.Value = strconv.FormatUint(uint64(r.Words), 10)
		case KeyPrefix:
			f.Value, f.Set = opt(r.Prefix)
		case KeySuffix:
			f.Value, f.Set = opt(r.Suffix)
		case KeySharedPath:
			f.Value = r.SharedPath
		case KeyInteractive:
			f.Value = strconv.FormatBool(r.Interactive)
		case KeyQRCode:
			f.Value = strconv.FormatBool(r.QRCode)
		case KeyCopy:
			f.Value = strconv.FormatBool(r.Copy)
		case KeyLanguage:
			f.Value = r.Language
		}
		out = append(out, f)
	}
	return out
}

// Resolve merges params, the persisted source and the defaults derived from
// env. src may be nil.
func Resolve(params Params, src *Source, env Environment) (Resolved, error) {
	v := viper.New()

	v.SetDefault(KeyWords, DefaultWords)
	v.SetDefault(KeySharedPath, env.DefaultSharedPath())
	v.SetDefault(KeyLanguage, DefaultLanguage)
	for name := range boolFields {
		v.SetDefault(name, false)
	}

	persisted, err := persistedLayer(src)
	if err != nil {
		return Resolved{}, err
	}
	if err := v.MergeConfigMap(persisted); err != nil {
		return Resolved{}, fmt.Errorf("merge persisted config: %w", err)
	}

	params.apply(v)

	r := Resolved{
		Words:       v.GetUint(KeyWords),
		SharedPath:  v.GetString(KeySharedPath),
		Interactive: v.GetBool(KeyInteractive),
		QRCode:      v.GetBool(KeyQRCode),
		Copy:        v.GetBool(KeyCopy),
		Language:    v.GetString(KeyLanguage),
	}
	if v.IsSet(KeyPrefix) {
		s := v.GetString(KeyPrefix)
		r.Prefix = &s
	}
	if v.IsSet(KeySuffix) {
		s := v.GetString(KeySuffix)
		r.Suffix = &s
	}
	r.CorpusPath = filepath.Join(r.SharedPath, CorpusFile)
	return r, nil
}

// persistedLayer converts the entries that name a known field into typed
// values. Unknown keys are ignored.
func persistedLayer(src *Source) (map[string]any, error) {
	layer := make(map[string]any)
	for _, name := range fields {
		e, ok := src.Lookup(PersistedKey(name))
		if !ok {
			continue
		}
		switch {
		case name == KeyWords:
			n, err := strconv.ParseUint(e.Value, 10, 0)
			if err != nil {
				return nil, &InvalidValueError{Path: src.Path, Line: e.Line, Key: e.Key, Value: e.Value, Err: err}
			}
			layer[name] = uint(n)
		case boolFields[name]:
			b, err := strconv.ParseBool(e.Value)
			if err != nil {
				return nil, &InvalidValueError{Path: src.Path, Line: e.Line, Key: e.Key, Value: e.Value, Err: err}
			}
			layer[name] = b
		default:
			layer[name] = e.Value
		}
	}
	return layer, nil
}

func (p Params) apply(v *viper.Viper) {
	if p.Words != nil {
		v.Set(KeyWords, *p.Words)
	}
	if p.Prefix != nil {
		v.Set(KeyPrefix, NormalizeExplicit(*p.Prefix))
	}
	if p.Suffix != nil {
		v.Set(KeySuffix, NormalizeExplicit(*p.Suffix))
	}
	if p.SharedPath != nil {
		v.Set(KeySharedPath, NormalizeExplicit(*p.SharedPath))
	}
	if p.Interactive != nil {
		v.Set(KeyInteractive, *p.Interactive)
	}
	if p.QRCode != nil {
		v.Set(KeyQRCode, *p.QRCode)
	}
	if p.Copy != nil {
		v.Set(KeyCopy, *p.Copy)
	}
	if p.Language != nil {
		v.Set(KeyLanguage, *p.Language)
	}
}

// WriteTemplate writes a starter configuration to path unless a file is
// already there. It reports whether a file was written.
func WriteTemplate(path string, env Environment) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("could not create config directory %s: %w", dir, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s=%d\n", PersistedKey(KeyWords), DefaultWords)
	fmt.Fprintf(&b, "%s=%s\n", PersistedKey(KeySharedPath), env.DefaultSharedPath())
	fmt.Fprintf(&b, "%s=%s\n", PersistedKey(KeyLanguage), DefaultLanguage)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}
