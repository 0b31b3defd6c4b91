// SPDX-License-Identifier: Unlicense OR MIT

// Package egl resolves the EGL entry points of the driver present on the
// machine at run time and exposes them through the Driver interface.
package egl

import "fmt"

type (
	Int               int32
	Enum              uint32
	Display           uintptr
	Config            uintptr
	Context           uintptr
	Surface           uintptr
	NativeDisplayType uintptr
	NativeWindowType  uintptr
)

const (
	DefaultDisplay NativeDisplayType = 0
	NoDisplay      Display           = 0
	NoContext      Context           = 0
	NoSurface      Surface           = 0
	NoConfig       Config            = 0
	NoWindow       NativeWindowType  = 0
)

const (
	EGL_FALSE = 0
	EGL_TRUE  = 1

	EGL_BLUE_SIZE         = 0x3022
	EGL_GREEN_SIZE        = 0x3023
	EGL_RED_SIZE          = 0x3024
	EGL_NONE              = 0x3038
	EGL_SURFACE_TYPE      = 0x3033
	EGL_RENDERABLE_TYPE   = 0x3040
	EGL_CONFORMANT        = 0x3042
	EGL_COLOR_BUFFER_TYPE = 0x303f
	EGL_RGB_BUFFER        = 0x308e

	EGL_PBUFFER_BIT        = 0x0001
	EGL_WINDOW_BIT         = 0x0004
	EGL_OPENGL_ES3_BIT_KHR = 0x0040

	EGL_VENDOR      = 0x3053
	EGL_VERSION     = 0x3054
	EGL_EXTENSIONS  = 0x3055
	EGL_CLIENT_APIS = 0x308d

	EGL_HEIGHT = 0x3056
	EGL_WIDTH  = 0x3057
	EGL_DRAW   = 0x3059
	EGL_READ   = 0x305a

	EGL_CONTEXT_CLIENT_VERSION       = 0x3098
	EGL_CONTEXT_MAJOR_VERSION_KHR    = 0x3098
	EGL_CONTEXT_MINOR_VERSION_KHR    = 0x30fb
	EGL_CONTEXT_FLAGS_KHR            = 0x30fc
	EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR = 0x0001

	EGL_OPENGL_ES_API = 0x30a0
)

// Version is a (major, minor) API feature level.
type Version struct {
	Major, Minor int32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Error is a code returned by eglGetError.
type Error Int

const (
	EGL_SUCCESS             Error = 0x3000
	EGL_NOT_INITIALIZED     Error = 0x3001
	EGL_BAD_ACCESS          Error = 0x3002
	EGL_BAD_ALLOC           Error = 0x3003
	EGL_BAD_ATTRIBUTE       Error = 0x3004
	EGL_BAD_CONFIG          Error = 0x3005
	EGL_BAD_CONTEXT         Error = 0x3006
	EGL_BAD_CURRENT_SURFACE Error = 0x3007
	EGL_BAD_DISPLAY         Error = 0x3008
	EGL_BAD_MATCH           Error = 0x3009
	EGL_BAD_NATIVE_PIXMAP   Error = 0x300a
	EGL_BAD_NATIVE_WINDOW   Error = 0x300b
	EGL_BAD_PARAMETER       Error = 0x300c
	EGL_BAD_SURFACE         Error = 0x300d
	EGL_CONTEXT_LOST        Error = 0x300e
)

var errorNames = map[Error]string{
	EGL_SUCCESS:             "EGL_SUCCESS",
	EGL_NOT_INITIALIZED:     "EGL_NOT_INITIALIZED",
	EGL_BAD_ACCESS:          "EGL_BAD_ACCESS",
	EGL_BAD_ALLOC:           "EGL_BAD_ALLOC",
	EGL_BAD_ATTRIBUTE:       "EGL_BAD_ATTRIBUTE",
	EGL_BAD_CONFIG:          "EGL_BAD_CONFIG",
	EGL_BAD_CONTEXT:         "EGL_BAD_CONTEXT",
	EGL_BAD_CURRENT_SURFACE: "EGL_BAD_CURRENT_SURFACE",
	EGL_BAD_DISPLAY:         "EGL_BAD_DISPLAY",
	EGL_BAD_MATCH:           "EGL_BAD_MATCH",
	EGL_BAD_NATIVE_PIXMAP:   "EGL_BAD_NATIVE_PIXMAP",
	EGL_BAD_NATIVE_WINDOW:   "EGL_BAD_NATIVE_WINDOW",
	EGL_BAD_PARAMETER:       "EGL_BAD_PARAMETER",
	EGL_BAD_SURFACE:         "EGL_BAD_SURFACE",
	EGL_CONTEXT_LOST:        "EGL_CONTEXT_LOST",
}

func (e Error) String() string {
	if n, ok := errorNames[e]; ok {
		return n
	}
	return fmt.Sprintf("0x%x", int32(e))
}
