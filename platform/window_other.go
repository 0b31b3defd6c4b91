// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !freebsd && !windows

package platform

func eglWindow(w Window) (NativeWindow, bool) {
	return 0, false
}
