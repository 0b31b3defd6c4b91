// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"strings"

	"golang.org/x/exp/slices"

	"gioui.org/x/eglreplay/internal/egl"
)

// EGL is the Platform backed by an EGL driver.
type EGL struct {
	drv egl.Driver

	apiBound bool
	display  Display
	version  Version
	exts     []string
	replay   WindowingData
}

// contextVersions are the OpenGL ES feature levels requested, preferred
// first.
var contextVersions = []Version{
	{Major: 3, Minor: 2},
	{Major: 3, Minor: 1},
	{Major: 3, Minor: 0},
}

// pbufferSize is the width and height of off-screen surfaces. They are
// only used to make a context current, never presented.
const pbufferSize = 32

var _ Platform = (*EGL)(nil)

func init() {
	Register("egl", func() (Platform, error) {
		return NewEGL(egl.Shared()), nil
	})
}

// NewEGL returns an EGL platform calling through drv.
func NewEGL(drv Driver) *EGL {
	trackLogger(drv)
	return &EGL{drv: drv}
}

type populator interface {
	Populate() bool
}

func (p *EGL) PopulateForReplay() bool {
	if t, ok := p.drv.(populator); ok {
		return t.Populate()
	}
	return true
}

// InitialiseAPI creates the replay context on the default display. Once
// it succeeded, later calls return the same context until it is destroyed
// with DestroyReplayContext.
func (p *EGL) InitialiseAPI() (Status, WindowingData) {
	if !p.replay.IsZero() {
		return Succeeded, p.replay
	}
	log := Logger()
	if !p.apiBound {
		if !p.drv.BindAPI(egl.EGL_OPENGL_ES_API) {
			log.Warn("eglBindAPI(EGL_OPENGL_ES_API) failed", "err", p.drv.GetError())
		}
		p.apiBound = true
	}

	disp := p.drv.GetDisplay(egl.DefaultDisplay)
	if disp == egl.NoDisplay {
		log.Error("couldn't open default EGL display")
		return APIInitFailed, WindowingData{}
	}
	p.display = disp

	major, minor, ok := p.drv.Initialize(disp)
	if ok {
		p.version = Version{Major: int32(major), Minor: int32(minor)}
		log.Info("initialised EGL display",
			"version", p.version,
			"vendor", p.drv.QueryString(disp, egl.EGL_VENDOR),
			"driver", p.drv.QueryString(disp, egl.EGL_VERSION),
			"apis", p.drv.QueryString(disp, egl.EGL_CLIENT_APIS))
	} else {
		log.Warn("eglInitialize failed", "err", p.drv.GetError())
	}
	p.exts = strings.Fields(p.drv.QueryString(disp, egl.EGL_EXTENSIONS))
	if !slices.Contains(p.exts, "EGL_KHR_create_context") {
		log.Warn("EGL_KHR_create_context not advertised, versioned context creation may fail")
	}

	replay := p.MakeContext(WindowingData{Display: disp})
	if replay.Context == egl.NoContext || replay.Surface == egl.NoSurface {
		log.Error("couldn't create OpenGL ES 3.x replay context - required for replay")
		p.DestroyContext(replay)
		return APIHardwareUnsupported, WindowingData{}
	}
	p.replay = replay
	log.Info("created replay context", "version", replay.Version)
	return Succeeded, replay
}

// ReplayContext returns the context created by InitialiseAPI.
func (p *EGL) ReplayContext() WindowingData {
	return p.replay
}

// DriverVersion returns the EGL version reported by the display.
func (p *EGL) DriverVersion() Version {
	return p.version
}

// Extensions returns the display extensions seen by InitialiseAPI.
func (p *EGL) Extensions() []string {
	return p.exts
}

func (p *EGL) MakeContext(share WindowingData) WindowingData {
	if !p.drv.Loaded("CreateContext", "ChooseConfig", "CreatePbufferSurface") {
		return WindowingData{}
	}
	return p.CreateContext(share.Display, share.Context, egl.NoWindow)
}

func (p *EGL) MakeOutputWindow(w Window, depth bool, share WindowingData) WindowingData {
	win := nativeWindow(w)
	disp := p.drv.GetDisplay(egl.DefaultDisplay)
	if disp == egl.NoDisplay {
		Logger().Error("couldn't open default EGL display")
		return WindowingData{}
	}
	return p.CreateContext(disp, share.Context, win)
}

// CreateContext creates a context on disp, sharing objects with share,
// and a surface for it: a window surface for win, or a small pbuffer if
// win is egl.NoWindow.
//
// The context is created at the highest supported version in
// contextVersions, falling back to a plain client version request. A
// failure to create the surface is logged and the context returned
// without one.
func (p *EGL) CreateContext(disp Display, share Context, win NativeWindow) WindowingData {
	log := Logger()
	ret := WindowingData{Display: disp}

	surfaceType := egl.Int(egl.EGL_PBUFFER_BIT)
	if win != egl.NoWindow {
		surfaceType = egl.EGL_WINDOW_BIT
	}
	attribs := []egl.Int{
		egl.EGL_RED_SIZE, 8,
		egl.EGL_GREEN_SIZE, 8,
		egl.EGL_BLUE_SIZE, 8,
		egl.EGL_RENDERABLE_TYPE, egl.EGL_OPENGL_ES3_BIT_KHR,
		egl.EGL_CONFORMANT, egl.EGL_OPENGL_ES3_BIT_KHR,
		egl.EGL_SURFACE_TYPE, surfaceType,
		egl.EGL_COLOR_BUFFER_TYPE, egl.EGL_RGB_BUFFER,
		egl.EGL_NONE,
	}
	cfg, ok := p.drv.ChooseConfig(disp, attribs)
	if !ok || cfg == egl.NoConfig {
		log.Error("couldn't find a suitable EGL config", "err", p.drv.GetError())
		return ret
	}

	ctx, ver := p.negotiate(disp, cfg, share)
	if ctx == egl.NoContext {
		log.Error("couldn't create GL ES context", "err", p.drv.GetError())
		return ret
	}
	ret.Context = ctx
	ret.Version = ver
	if granted, ok := p.drv.QueryContext(disp, ctx, egl.EGL_CONTEXT_CLIENT_VERSION); ok {
		log.Debug("created GL ES context", "version", ver, "client_version", int32(granted))
	} else {
		log.Debug("created GL ES context", "version", ver)
	}

	if win != egl.NoWindow {
		ret.Surface = p.drv.CreateWindowSurface(disp, cfg, win, nil)
		if ret.Surface == egl.NoSurface {
			log.Error("couldn't create surface for window", "err", p.drv.GetError())
		}
	} else {
		ret.Surface = p.drv.CreatePbufferSurface(disp, cfg, []egl.Int{
			egl.EGL_WIDTH, pbufferSize,
			egl.EGL_HEIGHT, pbufferSize,
			egl.EGL_NONE,
		})
		if ret.Surface == egl.NoSurface {
			log.Error("couldn't create a suitable PBuffer", "err", p.drv.GetError())
		}
	}
	return ret
}

// negotiate creates a debug context at the first accepted version.
func (p *EGL) negotiate(disp Display, cfg egl.Config, share Context) (Context, Version) {
	attribs := []egl.Int{
		egl.EGL_CONTEXT_MAJOR_VERSION_KHR, 0,
		egl.EGL_CONTEXT_MINOR_VERSION_KHR, 0,
		egl.EGL_CONTEXT_FLAGS_KHR, egl.EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR,
		egl.EGL_NONE,
	}
	for _, v := range contextVersions {
		attribs[1] = egl.Int(v.Major)
		attribs[3] = egl.Int(v.Minor)
		if ctx := p.drv.CreateContext(disp, cfg, share, attribs); ctx != egl.NoContext {
			return ctx, v
		}
		Logger().Debug("GL ES context version rejected", "version", v, "err", p.drv.GetError())
	}

	base := contextVersions[len(contextVersions)-1]
	legacy := []egl.Int{
		egl.EGL_CONTEXT_CLIENT_VERSION, egl.Int(base.Major),
		egl.EGL_CONTEXT_FLAGS_KHR, egl.EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR,
		egl.EGL_NONE,
	}
	if ctx := p.drv.CreateContext(disp, cfg, share, legacy); ctx != egl.NoContext {
		return ctx, Version{Major: base.Major}
	}
	return egl.NoContext, Version{}
}

func (p *EGL) Activate(d WindowingData) bool {
	return p.drv.MakeCurrent(d.Display, d.Surface, d.Surface, d.Context)
}

// QueryDimensions makes d current for the queries, since some drivers
// resolve surfaces relative to the current context, and restores the
// previously current context afterwards.
func (p *EGL) QueryDimensions(d WindowingData) (width, height int32) {
	prevDisp := p.drv.GetCurrentDisplay()
	prevCtx := p.drv.GetCurrentContext()
	prevDraw := p.drv.GetCurrentSurface(egl.EGL_DRAW)
	prevRead := p.drv.GetCurrentSurface(egl.EGL_READ)
	if prevDisp == egl.NoDisplay {
		// Nothing was current; release d again afterwards.
		prevDisp = d.Display
	}
	defer p.drv.MakeCurrent(prevDisp, prevDraw, prevRead, prevCtx)

	p.Activate(d)
	w, wok := p.drv.QuerySurface(d.Display, d.Surface, egl.EGL_WIDTH)
	h, hok := p.drv.QuerySurface(d.Display, d.Surface, egl.EGL_HEIGHT)
	if !wok || !hok {
		err := p.drv.GetError()
		Logger().Warn("unable to query the surface size", "err", err, "code", int32(err))
	}
	if wok {
		width = int32(w)
	}
	if hok {
		height = int32(h)
	}
	return width, height
}

func (p *EGL) Present(d WindowingData) {
	p.drv.SwapBuffers(d.Display, d.Surface)
}

func (p *EGL) DestroyContext(d WindowingData) {
	if d.Surface != egl.NoSurface {
		p.drv.DestroySurface(d.Display, d.Surface)
	}
	if d.Context != egl.NoContext {
		p.drv.DestroyContext(d.Display, d.Context)
	}
}

// DestroyReplayContext releases d from the current thread and destroys its
// surface and context.
func (p *EGL) DestroyReplayContext(d WindowingData) {
	if !p.drv.Loaded("DestroyContext") {
		return
	}
	p.drv.MakeCurrent(d.Display, egl.NoSurface, egl.NoSurface, egl.NoContext)
	p.drv.DestroySurface(d.Display, d.Surface)
	p.drv.DestroyContext(d.Display, d.Context)
	if d == p.replay {
		p.replay = WindowingData{}
	}
}

func (p *EGL) IsVisible(d WindowingData) bool {
	return true
}

func (p *EGL) ReplayFunction(name string) uintptr {
	if f := p.drv.GetProcAddress(name); f != 0 {
		return f
	}
	return p.drv.ModuleSymbol(name)
}

// DrawQuads is a no-op: legacy quad rendering is not available on OpenGL
// ES.
func (p *EGL) DrawQuads(width, height float32, vertices []Vec4) {}
