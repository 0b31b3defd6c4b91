// SPDX-License-Identifier: Unlicense OR MIT

/*
Package platform creates, activates and destroys the rendering contexts a
replay tool draws into.

A Platform is opened by backend name, populated against the driver found
on the machine and then initialised:

	p, err := platform.Open(platform.DefaultBackend)
	if err != nil {
		...
	}
	if !p.PopulateForReplay() {
		...
	}
	status, replay := p.InitialiseAPI()

The replay context returned by InitialiseAPI is owned by the caller and must
be released with DestroyReplayContext. Output windows are created with
MakeOutputWindow and released with DestroyContext.

Contexts are not safe for concurrent use: a context may only be current on
one thread at a time, and callers must serialize access per context.
*/
package platform

import "gioui.org/x/eglreplay/internal/egl"

type (
	Display      = egl.Display
	Context      = egl.Context
	Surface      = egl.Surface
	NativeWindow = egl.NativeWindowType
	Version      = egl.Version
	Driver       = egl.Driver
)

// WindowingData is a usable rendering target. It is either fully populated
// or has a null Context or Surface.
type WindowingData struct {
	Display Display
	Context Context
	Surface Surface
	// Version is the negotiated API feature level of Context.
	Version Version
}

// IsZero reports whether d holds no handles.
func (d WindowingData) IsZero() bool {
	return d.Display == egl.NoDisplay && d.Context == egl.NoContext && d.Surface == egl.NoSurface
}

// Vec4 is a homogeneous vertex position.
type Vec4 struct {
	X, Y, Z, W float32
}

// Platform is the set of context operations a windowing backend provides.
type Platform interface {
	// PopulateForReplay resolves the driver entry points. It must succeed
	// before any other method is called.
	PopulateForReplay() bool
	// InitialiseAPI opens the default display and creates the off-screen
	// replay context.
	InitialiseAPI() (Status, WindowingData)
	// MakeContext creates an off-screen context sharing objects with share.
	MakeContext(share WindowingData) WindowingData
	// MakeOutputWindow creates a context and surface for w, sharing objects
	// with share.
	MakeOutputWindow(w Window, depth bool, share WindowingData) WindowingData
	// Activate makes d current on the calling thread.
	Activate(d WindowingData) bool
	// QueryDimensions returns the surface size of d, or zero for a
	// dimension that could not be queried.
	QueryDimensions(d WindowingData) (width, height int32)
	Present(d WindowingData)
	DestroyContext(d WindowingData)
	DestroyReplayContext(d WindowingData)
	IsVisible(d WindowingData) bool
	// ReplayFunction returns the address of the named driver function, or 0.
	ReplayFunction(name string) uintptr
	DrawQuads(width, height float32, vertices []Vec4)
}
