// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

type proc int

const (
	procGetProcAddress proc = iota
	procBindAPI
	procGetDisplay
	procInitialize
	procTerminate
	procQueryString
	procChooseConfig
	procGetConfigAttrib
	procCreateContext
	procDestroyContext
	procQueryContext
	procCreateWindowSurface
	procCreatePbufferSurface
	procDestroySurface
	procQuerySurface
	procMakeCurrent
	procGetCurrentContext
	procGetCurrentDisplay
	procGetCurrentSurface
	procSwapBuffers
	procSwapInterval
	procGetError
	procReleaseThread

	procGetPlatformDisplay
	procGetPlatformDisplayEXT
	procCreatePlatformWindowSurface
	procSwapBuffersWithDamageKHR
	procSwapBuffersWithDamageEXT
	procPostSubBufferNV
	procDebugMessageControlKHR

	numProcs
)

type symbol struct {
	name      string
	mandatory bool
}

// symbols is resolved in order. eglGetProcAddress comes first since the
// optional entries fall back to it.
var symbols = [numProcs]symbol{
	procGetProcAddress:       {"GetProcAddress", true},
	procBindAPI:              {"BindAPI", true},
	procGetDisplay:           {"GetDisplay", true},
	procInitialize:           {"Initialize", true},
	procTerminate:            {"Terminate", true},
	procQueryString:          {"QueryString", true},
	procChooseConfig:         {"ChooseConfig", true},
	procGetConfigAttrib:      {"GetConfigAttrib", true},
	procCreateContext:        {"CreateContext", true},
	procDestroyContext:       {"DestroyContext", true},
	procQueryContext:         {"QueryContext", true},
	procCreateWindowSurface:  {"CreateWindowSurface", true},
	procCreatePbufferSurface: {"CreatePbufferSurface", true},
	procDestroySurface:       {"DestroySurface", true},
	procQuerySurface:         {"QuerySurface", true},
	procMakeCurrent:          {"MakeCurrent", true},
	procGetCurrentContext:    {"GetCurrentContext", true},
	procGetCurrentDisplay:    {"GetCurrentDisplay", true},
	procGetCurrentSurface:    {"GetCurrentSurface", true},
	procSwapBuffers:          {"SwapBuffers", true},
	procSwapInterval:         {"SwapInterval", true},
	procGetError:             {"GetError", true},
	procReleaseThread:        {"ReleaseThread", true},

	procGetPlatformDisplay:          {"GetPlatformDisplay", false},
	procGetPlatformDisplayEXT:       {"GetPlatformDisplayEXT", false},
	procCreatePlatformWindowSurface: {"CreatePlatformWindowSurface", false},
	procSwapBuffersWithDamageKHR:    {"SwapBuffersWithDamageKHR", false},
	procSwapBuffersWithDamageEXT:    {"SwapBuffersWithDamageEXT", false},
	procPostSubBufferNV:             {"PostSubBufferNV", false},
	procDebugMessageControlKHR:      {"DebugMessageControlKHR", false},
}

// symbolPrefix is prepended to every entry name before lookup.
const symbolPrefix = "egl"

// Table holds the resolved EGL entry points of one driver library.
type Table struct {
	loader Loader
	names  []string

	mu        sync.Mutex
	lib       Library
	procs     [numProcs]uintptr
	populated bool

	logger atomic.Pointer[slog.Logger]
}

var (
	sharedOnce  sync.Once
	sharedTable *Table
)

// Shared returns the process-wide table bound to the native loader. The
// table is created on first use; it still has to be populated.
func Shared() *Table {
	sharedOnce.Do(func() {
		sharedTable = NewTable(NativeLoader(), LibraryNames...)
	})
	return sharedTable
}

// NewTable returns an empty table that loads the first of names through l.
func NewTable(l Loader, names ...string) *Table {
	t := &Table{loader: l, names: names}
	t.SetLogger(nil)
	return t
}

// SetLogger sets the logger used while populating the table. A nil logger
// disables logging.
func (t *Table) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	t.logger.Store(l)
}

func (t *Table) log() *slog.Logger {
	return t.logger.Load()
}

// Populated reports whether a previous Populate resolved every mandatory
// entry.
func (t *Table) Populated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.populated
}

// Populate loads the driver library and resolves the entry points. Missing
// mandatory entries are logged and make Populate return false, but
// resolution continues so every missing entry is reported. Missing
// optional entries are tolerated. Entries resolved by an earlier call are
// not looked up again.
func (t *Table) Populate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.populated {
		return true
	}
	log := t.log()
	if t.lib == nil {
		lib, err := t.loader.Open(t.names)
		if err != nil {
			log.Error("can't load libEGL", "err", err)
			return false
		}
		t.lib = lib
	}
	log.Info("initialising EGL function pointers")

	ok := true
	for p := proc(0); p < numProcs; p++ {
		s := symbols[p]
		if !s.mandatory || t.procs[p] != 0 {
			continue
		}
		t.procs[p] = t.lib.Lookup(symbolPrefix + s.name)
		if t.procs[p] == 0 {
			ok = false
			log.Warn("unable to load EGL entry point", "name", s.name)
		}
	}
	for p := proc(0); p < numProcs; p++ {
		s := symbols[p]
		if s.mandatory || t.procs[p] != 0 {
			continue
		}
		name := symbolPrefix + s.name
		t.procs[p] = t.lib.Lookup(name)
		if t.procs[p] == 0 {
			t.procs[p] = t.getProcAddress(name)
		}
		if t.procs[p] == 0 {
			log.Debug("optional EGL entry point not available", "name", s.name)
		}
	}
	t.populated = ok
	return ok
}

// Loaded reports whether every named entry (without the egl prefix) has
// been resolved.
func (t *Table) Loaded(names ...string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range names {
		p, ok := lookupProc(n)
		if !ok || t.procs[p] == 0 {
			return false
		}
	}
	return true
}

func lookupProc(name string) (proc, bool) {
	for p, s := range symbols {
		if s.name == name {
			return proc(p), true
		}
	}
	return 0, false
}
