// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for genpwd using Cobra.
// It turns flags into explicit configuration parameters and delegates the
// work to internal/core. CLI code should remain thin.
package cli
