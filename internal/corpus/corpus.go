// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package corpus loads the word list passphrases are sampled from.
//
// A corpus is read once at startup and never changes afterwards. Words keep
// the order of the source file, but callers must treat the corpus as an
// unordered bag: only its length and indexed access matter for sampling.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrCorpusUnavailable is returned when the word list cannot be opened,
	// read or decompressed.
	ErrCorpusUnavailable = errors.New("word list unavailable")
	// ErrCorpusEmpty is returned when the word list holds no usable line.
	ErrCorpusEmpty = errors.New("word list is empty")
)

// CompressedExt marks a zstd-compressed word list.
const CompressedExt = ".zst"

// Corpus is an immutable, non-empty list of candidate words.
type Corpus struct {
	source string
	words  []string
}

// New builds a corpus from an in-memory list. Blank entries are dropped;
// duplicates are kept.
func New(words []string) (*Corpus, error) {
	return build("<memory>", words)
}

// Load reads a word list with one word per line. Paths ending in ".zst" are
// decompressed first. When path does not exist but path+".zst" does, the
// compressed sibling is loaded instead.
func Load(path string) (*Corpus, error) {
	resolved := path
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !strings.HasSuffix(path, CompressedExt) {
		if _, zerr := os.Stat(path + CompressedExt); zerr == nil {
			resolved = path + CompressedExt
		}
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, resolved, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(resolved, CompressedExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, resolved, err)
		}
		defer dec.Close()
		r = dec
	}

	words, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, resolved, err)
	}
	return build(resolved, words)
}

func readLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func build(source string, raw []string) (*Corpus, error) {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCorpusEmpty, source)
	}
	return &Corpus{source: source, words: words}, nil
}

// Len returns the number of words, repeats included.
func (c *Corpus) Len() int { return len(c.words) }

// Word returns the word at index i. It panics when i is out of range.
func (c *Corpus) Word(i int) string { return c.words[i] }

// Words returns a copy of the word list.
func (c *Corpus) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Source is the path the corpus was loaded from.
func (c *Corpus) Source() string { return c.source }
