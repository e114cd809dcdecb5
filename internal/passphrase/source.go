// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package passphrase

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Source draws bounded integers. IntN must return a value uniformly
// distributed over [0, n) and may panic when n <= 0.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8 stream seeded from crypto/rand.
//
// rand.Rand.IntN reduces with a bounded multiply and rejects the short
// remainder, so every index has the same probability for any n.
func NewSource() (Source, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSeededSource(seed), nil
}

// NewSeededSource returns a deterministic source, for tests and reproducible
// runs.
func NewSeededSource(seed [32]byte) Source {
	return rand.New(rand.NewChaCha8(seed))
}
