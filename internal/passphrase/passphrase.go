// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package passphrase assembles passphrases from words drawn out of a corpus.
package passphrase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toeirei/genpwd/internal/corpus"
)

// Generator draws words from a corpus with its Source.
type Generator struct {
	Source Source
}

// New returns a Generator backed by src.
func New(src Source) *Generator {
	return &Generator{Source: src}
}

// Generate returns prefix + W1W2...Wn + suffix where every Wi is an
// independently drawn corpus word with its first character upper-cased.
// A nil prefix or suffix contributes nothing; n == 0 yields prefix + suffix.
func (g *Generator) Generate(c *corpus.Corpus, n uint, prefix, suffix *string) string {
	var b strings.Builder
	if prefix != nil {
		b.WriteString(*prefix)
	}
	for i := uint(0); i < n; i++ {
		b.WriteString(Capitalize(c.Word(g.Source.IntN(c.Len()))))
	}
	if suffix != nil {
		b.WriteString(*suffix)
	}
	return b.String()
}

// Capitalize upper-cases the first character of word and leaves the rest,
// including any internal casing, untouched.
func Capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return word
	}
	return string(upper) + word[size:]
}
