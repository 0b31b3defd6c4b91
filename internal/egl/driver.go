// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"unsafe"
)

// Driver is the set of EGL calls used to manage replay contexts. Table
// implements it on top of a loaded library; calls through entries that
// did not resolve return the zero value.
type Driver interface {
	BindAPI(api Enum) bool
	GetDisplay(disp NativeDisplayType) Display
	Initialize(disp Display) (major, minor Int, ok bool)
	QueryString(disp Display, name Int) string
	ChooseConfig(disp Display, attribs []Int) (Config, bool)
	CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context
	DestroyContext(disp Display, ctx Context) bool
	QueryContext(disp Display, ctx Context, attr Int) (Int, bool)
	CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface
	CreatePbufferSurface(disp Display, cfg Config, attribs []Int) Surface
	DestroySurface(disp Display, surf Surface) bool
	QuerySurface(disp Display, surf Surface, attr Int) (Int, bool)
	MakeCurrent(disp Display, draw, read Surface, ctx Context) bool
	GetCurrentContext() Context
	GetCurrentDisplay() Display
	GetCurrentSurface(readdraw Int) Surface
	SwapBuffers(disp Display, surf Surface) bool
	GetError() Error
	// GetProcAddress resolves name through eglGetProcAddress.
	GetProcAddress(name string) uintptr
	// ModuleSymbol resolves name directly from the driver library.
	ModuleSymbol(name string) uintptr
	// Loaded reports whether the named entry points are available.
	Loaded(names ...string) bool
}

var _ Driver = (*Table)(nil)

// call invokes entry p, or returns 0 if it is not resolved.
//
//go:uintptrescapes
func (t *Table) call(p proc, args ...uintptr) uintptr {
	fn := t.procs[p]
	if fn == 0 {
		return 0
	}
	return t.lib.Call(fn, args...)
}

func (t *Table) getProcAddress(name string) uintptr {
	cname := cString(name)
	return t.call(procGetProcAddress, uintptr(unsafe.Pointer(&cname[0])))
}

func (t *Table) GetProcAddress(name string) uintptr {
	return t.getProcAddress(name)
}

func (t *Table) ModuleSymbol(name string) uintptr {
	if t.lib == nil {
		return 0
	}
	return t.lib.Lookup(name)
}

func (t *Table) BindAPI(api Enum) bool {
	return isTrue(t.call(procBindAPI, uintptr(api)))
}

func (t *Table) GetDisplay(disp NativeDisplayType) Display {
	return Display(t.call(procGetDisplay, uintptr(disp)))
}

func (t *Table) Initialize(disp Display) (Int, Int, bool) {
	var major, minor Int
	r := t.call(procInitialize, uintptr(disp), uintptr(unsafe.Pointer(&major)), uintptr(unsafe.Pointer(&minor)))
	return major, minor, isTrue(r)
}

func (t *Table) QueryString(disp Display, name Int) string {
	return goString(t.call(procQueryString, uintptr(disp), uintptr(name)))
}

func (t *Table) ChooseConfig(disp Display, attribs []Int) (Config, bool) {
	var cfg Config
	var ncfg Int
	a := terminate(attribs)
	r := t.call(procChooseConfig, uintptr(disp), uintptr(unsafe.Pointer(&a[0])), uintptr(unsafe.Pointer(&cfg)), 1, uintptr(unsafe.Pointer(&ncfg)))
	if ncfg == 0 {
		cfg = NoConfig
	}
	return cfg, isTrue(r)
}

func (t *Table) CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context {
	a := terminate(attribs)
	return Context(t.call(procCreateContext, uintptr(disp), uintptr(cfg), uintptr(share), uintptr(unsafe.Pointer(&a[0]))))
}

func (t *Table) DestroyContext(disp Display, ctx Context) bool {
	return isTrue(t.call(procDestroyContext, uintptr(disp), uintptr(ctx)))
}

func (t *Table) QueryContext(disp Display, ctx Context, attr Int) (Int, bool) {
	var val Int
	r := t.call(procQueryContext, uintptr(disp), uintptr(ctx), uintptr(attr), uintptr(unsafe.Pointer(&val)))
	return val, isTrue(r)
}

func (t *Table) CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface {
	a := terminate(attribs)
	return Surface(t.call(procCreateWindowSurface, uintptr(disp), uintptr(cfg), uintptr(win), uintptr(unsafe.Pointer(&a[0]))))
}

func (t *Table) CreatePbufferSurface(disp Display, cfg Config, attribs []Int) Surface {
	a := terminate(attribs)
	return Surface(t.call(procCreatePbufferSurface, uintptr(disp), uintptr(cfg), uintptr(unsafe.Pointer(&a[0]))))
}

func (t *Table) DestroySurface(disp Display, surf Surface) bool {
	return isTrue(t.call(procDestroySurface, uintptr(disp), uintptr(surf)))
}

func (t *Table) QuerySurface(disp Display, surf Surface, attr Int) (Int, bool) {
	var val Int
	r := t.call(procQuerySurface, uintptr(disp), uintptr(surf), uintptr(attr), uintptr(unsafe.Pointer(&val)))
	return val, isTrue(r)
}

func (t *Table) MakeCurrent(disp Display, draw, read Surface, ctx Context) bool {
	return isTrue(t.call(procMakeCurrent, uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx)))
}

func (t *Table) GetCurrentContext() Context {
	return Context(t.call(procGetCurrentContext))
}

func (t *Table) GetCurrentDisplay() Display {
	return Display(t.call(procGetCurrentDisplay))
}

func (t *Table) GetCurrentSurface(readdraw Int) Surface {
	return Surface(t.call(procGetCurrentSurface, uintptr(readdraw)))
}

func (t *Table) SwapBuffers(disp Display, surf Surface) bool {
	return isTrue(t.call(procSwapBuffers, uintptr(disp), uintptr(surf)))
}

func (t *Table) GetError() Error {
	return Error(t.call(procGetError))
}

// isTrue converts an EGLBoolean result register.
func isTrue(r uintptr) bool {
	return uint32(r) != EGL_FALSE
}

// terminate returns attribs with a trailing EGL_NONE. Attribute lists
// are name/value pairs, so only an odd length can already be terminated.
func terminate(attribs []Int) []Int {
	if n := len(attribs); n%2 == 1 && attribs[n-1] == EGL_NONE {
		return attribs
	}
	a := make([]Int, len(attribs), len(attribs)+1)
	copy(a, attribs)
	return append(a, EGL_NONE)
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// goString copies the NUL terminated C string at p.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&p))
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
