// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd

package platform

func eglWindow(w Window) (NativeWindow, bool) {
	if w, ok := w.(XlibWindow); ok {
		return NativeWindow(w.Window), true
	}
	return 0, false
}
