// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"testing"

	"gioui.org/x/eglreplay/internal/egl"
)

func TestWindowSystems(t *testing.T) {
	tests := []struct {
		w    Window
		want WindowingSystem
	}{
		{NoWindow{}, Headless},
		{XlibWindow{Window: 1}, Xlib},
		{WaylandWindow{Surface: 1}, Wayland},
		{Win32Window{HWND: 1}, Win32},
		{AndroidWindow{Window: 1}, Android},
	}
	for _, test := range tests {
		if got := test.w.System(); got != test.want {
			t.Errorf("%T.System() = %v, want %v", test.w, got, test.want)
		}
	}
	if got := WindowingSystem(42).String(); got != "WindowingSystem(42)" {
		t.Errorf("unknown system String() = %q", got)
	}
}

func TestNativeWindowHeadless(t *testing.T) {
	for _, w := range []Window{nil, NoWindow{}, WaylandWindow{Display: 1, Surface: 2}} {
		if got := nativeWindow(w); got != egl.NoWindow {
			t.Errorf("nativeWindow(%#v) = %#x, want none", w, uintptr(got))
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		Succeeded:              "Succeeded",
		APIInitFailed:          "APIInitFailed",
		APIHardwareUnsupported: "APIHardwareUnsupported",
		Status(99):             "Status(99)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", uint8(s), got, want)
		}
	}
}
