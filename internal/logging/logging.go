// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"io"

	clog "github.com/charmbracelet/log"
)

// SetDebug switches between debug output and the quiet default, which only
// shows warnings and errors.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		L.SetReportTimestamp(true)
		return
	}
	L.SetLevel(clog.WarnLevel)
	L.SetReportTimestamp(false)
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}
