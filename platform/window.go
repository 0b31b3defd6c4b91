// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"fmt"

	"gioui.org/x/eglreplay/internal/egl"
)

// WindowingSystem identifies the kind of native window handle.
type WindowingSystem uint8

const (
	// Headless requests an off-screen context.
	Headless WindowingSystem = iota
	Xlib
	Wayland
	Win32
	Android
)

func (s WindowingSystem) String() string {
	switch s {
	case Headless:
		return "Headless"
	case Xlib:
		return "Xlib"
	case Wayland:
		return "Wayland"
	case Win32:
		return "Win32"
	case Android:
		return "Android"
	default:
		return fmt.Sprintf("WindowingSystem(%d)", uint8(s))
	}
}

// Window is a native window reference. It is implemented by NoWindow,
// XlibWindow, WaylandWindow, Win32Window and AndroidWindow.
type Window interface {
	System() WindowingSystem
	implementsWindow()
}

// NoWindow requests a context without an on-screen surface.
type NoWindow struct{}

// XlibWindow is an X11 window on an Xlib display connection.
type XlibWindow struct {
	Display uintptr
	Window  uintptr
}

// WaylandWindow is a wl_surface on a wl_display.
type WaylandWindow struct {
	Display uintptr
	Surface uintptr
}

// Win32Window is a window handle (HWND).
type Win32Window struct {
	HWND uintptr
}

// AndroidWindow is an ANativeWindow pointer.
type AndroidWindow struct {
	Window uintptr
}

func (NoWindow) System() WindowingSystem      { return Headless }
func (XlibWindow) System() WindowingSystem    { return Xlib }
func (WaylandWindow) System() WindowingSystem { return Wayland }
func (Win32Window) System() WindowingSystem   { return Win32 }
func (AndroidWindow) System() WindowingSystem { return Android }

func (NoWindow) implementsWindow()      {}
func (XlibWindow) implementsWindow()    {}
func (WaylandWindow) implementsWindow() {}
func (Win32Window) implementsWindow()   {}
func (AndroidWindow) implementsWindow() {}

// nativeWindow returns the EGL window handle for w. A nil w or NoWindow
// maps to egl.NoWindow, as does any system this build can't present to,
// after logging it.
func nativeWindow(w Window) NativeWindow {
	switch w.(type) {
	case nil, NoWindow:
		return egl.NoWindow
	}
	if h, ok := eglWindow(w); ok {
		return h
	}
	Logger().Error("unexpected window system", "system", w.System())
	return egl.NoWindow
}
