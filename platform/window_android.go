// SPDX-License-Identifier: Unlicense OR MIT

package platform

func eglWindow(w Window) (NativeWindow, bool) {
	if w, ok := w.(AndroidWindow); ok {
		return NativeWindow(w.Window), true
	}
	return 0, false
}
