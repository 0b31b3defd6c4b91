// SPDX-License-Identifier: Unlicense OR MIT

package platform

func eglWindow(w Window) (NativeWindow, bool) {
	if w, ok := w.(Win32Window); ok {
		return NativeWindow(w.HWND), true
	}
	return 0, false
}
