// seehuhn.de/go/lineannot - line annotations for 2D charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lineannot

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	diag    atomic.Pointer[slog.Logger]
)

// SetLogger attaches a logger for diagnostic output from configuration,
// label placement and drawing.  Passing nil detaches the current logger.
// Diagnostics are emitted at slog.LevelDebug; no output is produced unless
// the attached handler enables that level.
func SetLogger(l *slog.Logger) {
	diag.Store(l)
}

// Logger returns the attached logger, or a logger which discards all
// output.  Surfaces use it to report drawing problems.
func Logger() *slog.Logger {
	if l := diag.Load(); l != nil {
		return l
	}
	return discard
}

// debugEnabled reports whether debug output would be written.  Callers use
// this to avoid building attribute lists on the hot path.
func debugEnabled() bool {
	l := diag.Load()
	return l != nil && l.Enabled(context.Background(), slog.LevelDebug)
}
