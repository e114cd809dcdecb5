// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for genpwd.
//
// Usage:
//
//	go run . [flags]
//	./genpwd [flags]
//
// This prints one passphrase to stdout. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/genpwd/internal/logging"
	"github.com/toeirei/genpwd/ui/cli"
)

// main is the entrypoint for the genpwd CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
