// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core composes one genpwd invocation: configuration resolution,
// corpus loading, the generate/accept loop and the optional clipboard and
// visual-code hand-offs. It owns no UI; the cobra layer in ui/cli builds
// Options and calls Run.
package core
