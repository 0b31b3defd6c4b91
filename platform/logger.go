// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"gioui.org/x/eglreplay/internal/egl"
)

// nopHandler discards all records. Enabled returns false so disabled
// logging skips formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

var (
	driversMu sync.Mutex
	// drivers are the logging drivers passed to NewEGL.
	drivers []loggerSetter
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for the platform layer, the shared
// driver table and every driver passed to NewEGL, including those created
// before the call. By default nothing is logged; pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: rejected context versions, optional entry points
//   - [slog.LevelInfo]: driver version, negotiated context version
//   - [slog.LevelWarn]: missing entry points, failed surface queries
//   - [slog.LevelError]: display, config or context creation failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	egl.Shared().SetLogger(l)

	driversMu.Lock()
	defer driversMu.Unlock()
	for _, d := range drivers {
		d.SetLogger(l)
	}
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by drivers that log on their own.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// trackLogger hands the current logger to d and keeps it in sync with
// later SetLogger calls. Tracked drivers live as long as the process.
func trackLogger(d Driver) {
	ls, ok := d.(loggerSetter)
	if !ok {
		return
	}
	driversMu.Lock()
	defer driversMu.Unlock()
	ls.SetLogger(Logger())
	if !slices.Contains(drivers, ls) {
		drivers = append(drivers, ls)
	}
}
