// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !freebsd && !windows

package egl

// LibraryNames lists the EGL library candidates, preferred first. EGL
// is not supported on this system.
var LibraryNames []string

type noLoader struct{}

// NativeLoader returns the loader for the running system. Its Open always
// fails with ErrUnsupported.
func NativeLoader() Loader {
	return noLoader{}
}

func (noLoader) Open(names []string) (Library, error) {
	return nil, ErrUnsupported
}
