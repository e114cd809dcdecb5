// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package visual hands a finished passphrase to a scannable-code display.
//
// The core only decides whether to call a Bridge and with which text. The
// Terminal bridge encodes a QR code and shows it full-screen; Nop is used
// when no code was requested or no display exists.
package visual

import (
	"context"
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrCodeRenderingUnavailable is returned when the text cannot be encoded,
	// for example because it exceeds the code's capacity.
	ErrCodeRenderingUnavailable = errors.New("code rendering unavailable")
	// ErrDisplayUnavailable is returned when no presentation surface can be
	// acquired.
	ErrDisplayUnavailable = errors.New("display unavailable")
)

// Bridge renders and displays text as a visual code.
type Bridge interface {
	RenderAndDisplay(ctx context.Context, text string) error
}

// Nop is a Bridge that does nothing.
type Nop struct{}

// RenderAndDisplay implements Bridge.
func (Nop) RenderAndDisplay(context.Context, string) error { return nil }

// Render encodes text as a QR code drawn with half-block characters, two
// modules per character cell.
func Render(text string, level qrcode.RecoveryLevel) (string, error) {
	q, err := qrcode.New(text, level)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCodeRenderingUnavailable, err)
	}
	return strings.TrimRight(q.ToSmallString(false), "\n"), nil
}
