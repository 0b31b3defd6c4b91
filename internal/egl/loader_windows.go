// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// LibraryNames lists the EGL library candidates, preferred first.
var LibraryNames = []string{"libEGL.dll"}

type dllLoader struct{}

type dllLibrary struct {
	handle windows.Handle
}

// NativeLoader returns the loader for the running system.
func NativeLoader() Loader {
	return dllLoader{}
}

func (dllLoader) Open(names []string) (Library, error) {
	return openFirst(names, func(name string) (Library, error) {
		h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
		if err != nil {
			return nil, err
		}
		return &dllLibrary{handle: h}, nil
	})
}

func (l *dllLibrary) Lookup(name string) uintptr {
	p, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0
	}
	return p
}

func (l *dllLibrary) Call(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(fn, args...)
	return r
}
