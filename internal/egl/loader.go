// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by loaders on systems without an EGL
// library convention.
var ErrUnsupported = errors.New("egl: runtime loading not supported on this system")

// Loader opens driver libraries.
type Loader interface {
	// Open tries each name in order and returns the first library that
	// loads.
	Open(names []string) (Library, error)
}

// Library is a loaded driver module.
type Library interface {
	// Lookup returns the address of the named symbol, or 0.
	Lookup(name string) uintptr
	// Call invokes the C function at fn and returns its first result
	// register.
	Call(fn uintptr, args ...uintptr) uintptr
}

// openFirst implements Loader.Open on top of a single-name open function.
func openFirst(names []string, open func(name string) (Library, error)) (Library, error) {
	if len(names) == 0 {
		return nil, errors.New("egl: no library names to try")
	}
	var errs []error
	for _, n := range names {
		lib, err := open(n)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, fmt.Errorf("egl: failed to load %s: %w", n, err))
	}
	return nil, errors.Join(errs...)
}
