// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func writeCompressed(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

func TestLoad_PreservesOrderAndDuplicates(t *testing.T) {
	p := writeFile(t, "wordlist", "apple\nbanana\r\n\n  cherry  \napple\n")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "banana", "cherry", "apple"}, c.Words())
	require.Equal(t, 4, c.Len())
	require.Equal(t, "banana", c.Word(1))
	require.Equal(t, p, c.Source())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Fatalf("expected ErrCorpusUnavailable, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	for name, content := range map[string]string{
		"zero bytes":  "",
		"blank lines": "\n\n   \n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "wordlist", content))
			if !errors.Is(err, ErrCorpusEmpty) {
				t.Fatalf("expected ErrCorpusEmpty, got %v", err)
			}
		})
	}
}

func TestLoad_Compressed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "wordlist.zst")
	writeCompressed(t, p, "alpha\nbeta\ngamma\n")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, c.Words())
}

func TestLoad_FallsBackToCompressedSibling(t *testing.T) {
	dir := t.TempDir()
	writeCompressed(t, filepath.Join(dir, "wordlist.zst"), "delta\n")

	c, err := Load(filepath.Join(dir, "wordlist"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	require.Equal(t, filepath.Join(dir, "wordlist.zst"), c.Source())
}

func TestLoad_CorruptCompressed(t *testing.T) {
	p := writeFile(t, "wordlist.zst", "definitely not zstd")
	_, err := Load(p)
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Fatalf("expected ErrCorpusUnavailable, got %v", err)
	}
}

func TestNew(t *testing.T) {
	_, err := New([]string{"", " "})
	require.ErrorIs(t, err, ErrCorpusEmpty)

	c, err := New([]string{"one", "two"})
	require.NoError(t, err)
	words := c.Words()
	words[0] = "mutated"
	require.Equal(t, "one", c.Word(0), "Words must return a copy")
}
