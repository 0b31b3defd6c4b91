// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"fmt"

	"gioui.org/x/eglreplay/internal/egl"
)

const (
	fakeDisplay Display    = 0xd15
	fakeConfig  egl.Config = 0xc0f
)

type current struct {
	disp       Display
	draw, read Surface
	ctx        Context
}

// fakeDriver is an in-memory EGL implementation that accepts only the
// configured context versions.
type fakeDriver struct {
	versions    map[Version]bool
	legacy      bool
	noDisplay   bool
	noConfig    bool
	failPbuffer bool
	failWindow  bool
	failQuery   bool
	missing     map[string]bool
	procs       map[string]uintptr
	module      map[string]uintptr

	next      uintptr
	lastVer   Version
	contexts  map[Context]Version
	surfaces  map[Surface]Version
	pbuffers  map[Surface]bool
	cur       current
	err       egl.Error
	bindAPI   int
	calls     []string
	configs   [][]egl.Int
	ctxReqs   [][]egl.Int
	pbufReqs  [][]egl.Int
	windows   []NativeWindow
	destroyed []uintptr
}

func newFakeDriver(versions ...Version) *fakeDriver {
	f := &fakeDriver{
		versions: make(map[Version]bool),
		missing:  make(map[string]bool),
		procs:    make(map[string]uintptr),
		module:   make(map[string]uintptr),
		contexts: make(map[Context]Version),
		surfaces: make(map[Surface]Version),
		pbuffers: make(map[Surface]bool),
		next:     0x100,
	}
	for _, v := range versions {
		f.versions[v] = true
	}
	return f
}

func (f *fakeDriver) handle() uintptr {
	f.next++
	return f.next
}

func (f *fakeDriver) fail(err egl.Error) {
	f.err = err
}

func (f *fakeDriver) BindAPI(api egl.Enum) bool {
	f.bindAPI++
	return api == egl.EGL_OPENGL_ES_API
}

func (f *fakeDriver) GetDisplay(disp egl.NativeDisplayType) Display {
	if f.noDisplay {
		return egl.NoDisplay
	}
	return fakeDisplay
}

func (f *fakeDriver) Initialize(disp Display) (egl.Int, egl.Int, bool) {
	return 1, 5, disp == fakeDisplay
}

func (f *fakeDriver) QueryString(disp Display, name egl.Int) string {
	switch name {
	case egl.EGL_EXTENSIONS:
		return "EGL_KHR_create_context EGL_KHR_surfaceless_context"
	case egl.EGL_VENDOR:
		return "fake"
	case egl.EGL_VERSION:
		return "1.5 fake"
	case egl.EGL_CLIENT_APIS:
		return "OpenGL_ES"
	}
	return ""
}

func (f *fakeDriver) ChooseConfig(disp Display, attribs []egl.Int) (egl.Config, bool) {
	f.configs = append(f.configs, append([]egl.Int(nil), attribs...))
	if f.noConfig {
		f.fail(egl.EGL_BAD_ATTRIBUTE)
		return egl.NoConfig, false
	}
	return fakeConfig, true
}

// requestedVersion decodes a context attribute list.
func requestedVersion(attribs []egl.Int) (v Version, ladder, debug bool) {
	for i := 0; i+1 < len(attribs); i += 2 {
		switch attribs[i] {
		case egl.EGL_CONTEXT_MAJOR_VERSION_KHR:
			v.Major = int32(attribs[i+1])
		case egl.EGL_CONTEXT_MINOR_VERSION_KHR:
			v.Minor = int32(attribs[i+1])
			ladder = true
		case egl.EGL_CONTEXT_FLAGS_KHR:
			debug = attribs[i+1]&egl.EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR != 0
		}
	}
	return v, ladder, debug
}

func (f *fakeDriver) CreateContext(disp Display, cfg egl.Config, share Context, attribs []egl.Int) Context {
	f.ctxReqs = append(f.ctxReqs, append([]egl.Int(nil), attribs...))
	v, ladder, _ := requestedVersion(attribs)
	if (ladder && !f.versions[v]) || (!ladder && !f.legacy) {
		f.fail(egl.EGL_BAD_MATCH)
		return egl.NoContext
	}
	if share != egl.NoContext {
		if _, ok := f.contexts[share]; !ok {
			f.fail(egl.EGL_BAD_CONTEXT)
			return egl.NoContext
		}
	}
	ctx := Context(f.handle())
	f.contexts[ctx] = v
	f.lastVer = v
	return ctx
}

func (f *fakeDriver) DestroyContext(disp Display, ctx Context) bool {
	if _, ok := f.contexts[ctx]; !ok {
		f.fail(egl.EGL_BAD_CONTEXT)
		return false
	}
	delete(f.contexts, ctx)
	f.calls = append(f.calls, "DestroyContext")
	f.destroyed = append(f.destroyed, uintptr(ctx))
	return true
}

func (f *fakeDriver) QueryContext(disp Display, ctx Context, attr egl.Int) (egl.Int, bool) {
	v, ok := f.contexts[ctx]
	if !ok || attr != egl.EGL_CONTEXT_CLIENT_VERSION {
		f.fail(egl.EGL_BAD_ATTRIBUTE)
		return 0, false
	}
	return egl.Int(v.Major), true
}

func (f *fakeDriver) CreateWindowSurface(disp Display, cfg egl.Config, win NativeWindow, attribs []egl.Int) Surface {
	f.windows = append(f.windows, win)
	if f.failWindow {
		f.fail(egl.EGL_BAD_NATIVE_WINDOW)
		return egl.NoSurface
	}
	s := Surface(f.handle())
	f.surfaces[s] = f.lastVer
	return s
}

func (f *fakeDriver) CreatePbufferSurface(disp Display, cfg egl.Config, attribs []egl.Int) Surface {
	f.pbufReqs = append(f.pbufReqs, append([]egl.Int(nil), attribs...))
	if f.failPbuffer {
		f.fail(egl.EGL_BAD_ALLOC)
		return egl.NoSurface
	}
	s := Surface(f.handle())
	f.surfaces[s] = f.lastVer
	f.pbuffers[s] = true
	return s
}

func (f *fakeDriver) DestroySurface(disp Display, surf Surface) bool {
	if _, ok := f.surfaces[surf]; !ok {
		f.fail(egl.EGL_BAD_SURFACE)
		return false
	}
	delete(f.surfaces, surf)
	f.calls = append(f.calls, "DestroySurface")
	f.destroyed = append(f.destroyed, uintptr(surf))
	return true
}

func (f *fakeDriver) QuerySurface(disp Display, surf Surface, attr egl.Int) (egl.Int, bool) {
	if _, ok := f.surfaces[surf]; f.failQuery || !ok {
		f.fail(egl.EGL_BAD_SURFACE)
		return 0, false
	}
	// Surfaces are only visible to the current context.
	if f.cur.draw != surf {
		f.fail(egl.EGL_BAD_SURFACE)
		return 0, false
	}
	if f.pbuffers[surf] {
		return pbufferSize, true
	}
	switch attr {
	case egl.EGL_WIDTH:
		return 800, true
	case egl.EGL_HEIGHT:
		return 600, true
	}
	return 0, false
}

func (f *fakeDriver) MakeCurrent(disp Display, draw, read Surface, ctx Context) bool {
	f.calls = append(f.calls, fmt.Sprintf("MakeCurrent(%#x, %#x)", uintptr(draw), uintptr(ctx)))
	if disp == egl.NoDisplay {
		f.fail(egl.EGL_BAD_DISPLAY)
		return false
	}
	if ctx == egl.NoContext && draw == egl.NoSurface && read == egl.NoSurface {
		f.cur = current{}
		return true
	}
	if _, ok := f.contexts[ctx]; !ok {
		f.fail(egl.EGL_BAD_CONTEXT)
		return false
	}
	f.cur = current{disp: disp, draw: draw, read: read, ctx: ctx}
	return true
}

func (f *fakeDriver) GetCurrentContext() Context { return f.cur.ctx }
func (f *fakeDriver) GetCurrentDisplay() Display { return f.cur.disp }

func (f *fakeDriver) GetCurrentSurface(readdraw egl.Int) Surface {
	if readdraw == egl.EGL_READ {
		return f.cur.read
	}
	return f.cur.draw
}

func (f *fakeDriver) SwapBuffers(disp Display, surf Surface) bool {
	f.calls = append(f.calls, "SwapBuffers")
	return true
}

func (f *fakeDriver) GetError() egl.Error {
	err := f.err
	f.err = egl.EGL_SUCCESS
	if err == 0 {
		err = egl.EGL_SUCCESS
	}
	return err
}

func (f *fakeDriver) GetProcAddress(name string) uintptr { return f.procs[name] }

func (f *fakeDriver) ModuleSymbol(name string) uintptr { return f.module[name] }

func (f *fakeDriver) Loaded(names ...string) bool {
	for _, n := range names {
		if f.missing[n] {
			return false
		}
	}
	return true
}
