// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for genpwd using the
// Cobra library. It defines the root command, its flags and the main entry
// point for execution.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/genpwd/internal/config"
	"github.com/toeirei/genpwd/internal/core"
	"github.com/toeirei/genpwd/internal/logging"
)

// userHomeDir is a test seam for os.UserHomeDir.
var userHomeDir = os.UserHomeDir

// rootFlags holds the values bound to the root command's flags. A fresh
// instance is created per NewRootCmd so tests can build isolated commands.
type rootFlags struct {
	words       uint
	prefix      string
	suffix      string
	sharedPath  string
	interactive bool
	qrCode      bool
	copy        bool
	language    string
	configPath  string
	timeout     time.Duration
	verbose     bool
}

// params converts the flags the user actually set into explicit parameters.
// Flags left at their default are not explicit and fall through to the
// persisted configuration.
func (f *rootFlags) params(cmd *cobra.Command) config.Params {
	var p config.Params
	fl := cmd.Flags()
	if fl.Changed("words") {
		p.Words = &f.words
	}
	if fl.Changed("prefix") {
		p.Prefix = &f.prefix
	}
	if fl.Changed("suffix") {
		p.Suffix = &f.suffix
	}
	if fl.Changed("shared-path") {
		p.SharedPath = &f.sharedPath
	}
	if fl.Changed("interactive") {
		p.Interactive = &f.interactive
	}
	if fl.Changed("qr-code") {
		p.QRCode = &f.qrCode
	}
	if fl.Changed("copy") {
		p.Copy = &f.copy
	}
	if fl.Changed("language") {
		p.Language = &f.language
	}
	return p
}

// options builds the core options for cmd.
func (f *rootFlags) options(cmd *cobra.Command) (core.Options, error) {
	home, err := userHomeDir()
	if err != nil {
		return core.Options{}, fmt.Errorf("could not get user home directory: %w", err)
	}
	return core.Options{
		Params:      f.params(cmd),
		Environment: config.Environment{HomeDir: home, AppName: config.DefaultAppName},
		ConfigPath:  f.configPath,
		Timeout:     f.timeout,
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "genpwd",
		Short: "Generate easy to comprehend, hard to crack passphrases.",
		Long: `genpwd concatenates randomly chosen dictionary words into a passphrase,
optionally wrapped in a fixed prefix and suffix.

Words are read from <shared-path>/wordlist (one word per line, optionally
zstd-compressed as wordlist.zst). Defaults for every flag can be stored as
KEY=VALUE lines in ~/.config/genpwd/config, e.g. PREFIX=131 or WORDS=4.
Flags given on the command line always win.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			warnIfNotTerminal(opts)
			return core.Run(cmd.Context(), opts)
		},
	}

	cmd.Version = compositeVersion(resolveBuildVersion(nil))
	cmd.SetVersionTemplate("{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.UintVarP(&f.words, "words", "w", config.DefaultWords, "Number of words to include")
	pf.StringVar(&f.prefix, "prefix", "", "Fixed prefix before the generated passphrase (spaces become underscores)")
	pf.StringVar(&f.suffix, "suffix", "", "Fixed suffix after the generated passphrase (spaces become underscores)")
	pf.StringVar(&f.sharedPath, "shared-path", "", "Directory holding the wordlist (default ~/.config/genpwd)")
	pf.BoolVarP(&f.interactive, "interactive", "i", false, "Ask to accept or regenerate each passphrase")
	pf.BoolVarP(&f.qrCode, "qr-code", "q", false, "Show the accepted passphrase as a QR code")
	pf.BoolVarP(&f.copy, "copy", "c", false, "Copy the accepted passphrase to the clipboard")
	pf.StringVar(&f.language, "language", config.DefaultLanguage, `Prompt language ("en", "de")`)
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/genpwd/config)")
	pf.DurationVar(&f.timeout, "timeout", 0, "Give up waiting for an interactive answer after this long (0 waits forever)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	cmd.AddCommand(newConfigCmd(f), newVersionCmd())
	return cmd
}

// warnIfNotTerminal flags interactive runs whose answers come from a pipe.
func warnIfNotTerminal(opts core.Options) {
	if opts.Params.Interactive == nil || !*opts.Params.Interactive {
		return
	}
	if in, ok := opts.Stdin.(*os.File); ok && !term.IsTerminal(int(in.Fd())) {
		logging.Warnf("stdin is not a terminal; answers are read from it line by line")
	}
}
