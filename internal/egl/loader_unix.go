// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd

package egl

import (
	"github.com/ebitengine/purego"
)

// LibraryNames lists the EGL library candidates, preferred first.
var LibraryNames = []string{"libEGL.so", "libEGL.so.1"}

type dlLoader struct{}

type dlLibrary struct {
	handle uintptr
}

// NativeLoader returns the loader for the running system.
func NativeLoader() Loader {
	return dlLoader{}
}

func (dlLoader) Open(names []string) (Library, error) {
	return openFirst(names, func(name string) (Library, error) {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			return nil, err
		}
		return &dlLibrary{handle: h}, nil
	})
}

func (l *dlLibrary) Lookup(name string) uintptr {
	p, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0
	}
	return p
}

func (l *dlLibrary) Call(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := purego.SyscallN(fn, args...)
	return r
}
