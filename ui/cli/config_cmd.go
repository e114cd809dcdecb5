// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/toeirei/genpwd/internal/config"
	"github.com/toeirei/genpwd/internal/core"
	"github.com/toeirei/genpwd/internal/i18n"
)

// newConfigCmd groups the commands that inspect and create the persisted
// configuration. They share the root's persistent flags, so
// `genpwd --prefix x config show` shows the effect of the flag.
func newConfigCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the genpwd configuration",
	}

	var asYAML bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Prints the configuration after merging flags, the config file and defaults.
The default output uses the KEY=VALUE format of the config file; unset
optional values are omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			resolved, _, err := core.ResolveConfig(opts)
			if err != nil {
				return err
			}
			i18n.SetLang(resolved.Language)

			out := cmd.OutOrStdout()
			if asYAML {
				data, err := yaml.Marshal(resolved)
				if err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				_, err = out.Write(data)
				return err
			}
			for _, field := range resolved.Fields() {
				if field.Set {
					fmt.Fprintf(out, "%s=%s\n", field.Key, field.Value)
				}
			}
			return nil
		},
	}
	show.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML, including derived paths")

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file and word list locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			resolved, src, err := core.ResolveConfig(opts)
			if err != nil {
				return err
			}
			i18n.SetLang(resolved.Language)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.path_config", src.Path))
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.path_corpus", resolved.CorpusPath))
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			target := opts.ConfigPath
			if target == "" {
				target = opts.Environment.ConfigPath()
			}
			wrote, err := config.WriteTemplate(target, opts.Environment)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.wrote", target))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.exists", target))
			}
			return nil
		},
	}

	cmd.AddCommand(show, path, initCmd)
	return cmd
}
