// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/toeirei/genpwd/internal/config"
	"github.com/toeirei/genpwd/internal/corpus"
	"github.com/toeirei/genpwd/internal/i18n"
	"github.com/toeirei/genpwd/internal/interact"
	"github.com/toeirei/genpwd/internal/logging"
	"github.com/toeirei/genpwd/internal/passphrase"
	"github.com/toeirei/genpwd/internal/visual"
)

// ErrClipboardUnavailable is returned when --copy is set and the system
// clipboard cannot be written.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard receives the accepted passphrase.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Options wires one invocation. Zero-valued collaborators are replaced by
// the process defaults.
type Options struct {
	Params      config.Params
	Environment config.Environment
	// ConfigPath overrides Environment.ConfigPath().
	ConfigPath string
	// Timeout bounds each interactive answer. Zero waits forever.
	Timeout time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	// Stderr receives prompts and status lines so Stdout only carries the
	// accepted passphrase.
	Stderr io.Writer

	Source    passphrase.Source
	Bridge    visual.Bridge
	Clipboard Clipboard
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Clipboard == nil {
		o.Clipboard = systemClipboard{}
	}
}

// configPath is the persisted configuration file used by o.
func (o Options) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return o.Environment.ConfigPath()
}

// ResolveConfig loads the persisted source and merges it with the explicit
// parameters and defaults.
func ResolveConfig(opts Options) (config.Resolved, *config.Source, error) {
	src, err := config.LoadSource(opts.configPath())
	if err != nil {
		return config.Resolved{}, nil, err
	}
	resolved, err := config.Resolve(opts.Params, src, opts.Environment)
	if err != nil {
		return config.Resolved{}, src, err
	}
	return resolved, src, nil
}

// SelectBridge picks the visual-code bridge for an invocation.
func SelectBridge(enabled bool, in io.Reader, out io.Writer) visual.Bridge {
	if !enabled {
		return visual.Nop{}
	}
	return visual.NewTerminal(in, out)
}

// Run generates a passphrase and lets the user accept it when interactive.
// The accepted passphrase goes to the visual-code bridge and the clipboard
// when asked, and is printed last, so a failure anywhere leaves Stdout empty.
func Run(ctx context.Context, opts Options) error {
	opts.defaults()

	resolved, src, err := ResolveConfig(opts)
	if err != nil {
		return err
	}
	logging.Debugf("config: %s (present=%v, %d entries)", src.Path, src.Present(), src.Len())
	for _, f := range resolved.Fields() {
		logging.Debugf("config: %s=%q set=%v", f.Key, f.Value, f.Set)
	}

	i18n.SetLang(resolved.Language)

	words, err := corpus.Load(resolved.CorpusPath)
	if err != nil {
		return err
	}
	logging.Debugf("corpus: %d words from %s", words.Len(), words.Source())

	if opts.Source == nil {
		if opts.Source, err = passphrase.NewSource(); err != nil {
			return err
		}
	}
	gen := passphrase.New(opts.Source)

	loop := &interact.Loop{
		Generate: func() (string, error) {
			return gen.Generate(words, resolved.Words, resolved.Prefix, resolved.Suffix), nil
		},
		In:          opts.Stdin,
		Out:         opts.Stderr,
		Interactive: resolved.Interactive,
		Timeout:     opts.Timeout,
	}
	pass, stats, err := loop.RunStats(ctx)
	if err != nil {
		return err
	}
	logging.Debugf("accepted after %d attempt(s), %d invalid answer(s)", stats.Attempts, stats.Invalid)

	if resolved.QRCode {
		bridge := opts.Bridge
		if bridge == nil {
			bridge = SelectBridge(true, opts.Stdin, opts.Stderr)
		}
		if err := bridge.RenderAndDisplay(ctx, pass); err != nil {
			return err
		}
	}

	if resolved.Copy {
		if err := opts.Clipboard.WriteAll(pass); err != nil {
			return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
		}
		fmt.Fprintln(opts.Stderr, i18n.T("cli.copied"))
	}

	if _, err := fmt.Fprintln(opts.Stdout, pass); err != nil {
		return fmt.Errorf("write passphrase: %w", err)
	}
	return nil
}
