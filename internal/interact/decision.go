// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package interact

import (
	"slices"
	"strings"

	"github.com/toeirei/genpwd/internal/i18n"
)

// Decision is the interpretation of one answer at the prompt.
type Decision int

const (
	DecisionInvalid Decision = iota
	DecisionAccept
	DecisionReject
)

func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "accept"
	case DecisionReject:
		return "reject"
	default:
		return "invalid"
	}
}

var (
	builtinAffirmative = []string{"y", "yes"}
	builtinNegative    = []string{"n", "no"}
)

// ParseDecision maps an answer to a Decision. Matching ignores case and
// surrounding whitespace. "y"/"yes" and "n"/"no" are always understood; the
// active locale may add its own tokens.
func ParseDecision(answer string) Decision {
	a := strings.ToLower(strings.TrimSpace(answer))
	if a == "" {
		return DecisionInvalid
	}
	if slices.Contains(builtinAffirmative, a) || slices.Contains(i18n.List("prompt.affirmative"), a) {
		return DecisionAccept
	}
	if slices.Contains(builtinNegative, a) || slices.Contains(i18n.List("prompt.negative"), a) {
		return DecisionReject
	}
	return DecisionInvalid
}
