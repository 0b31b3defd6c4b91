// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "egl"

// ErrUnknownBackend is returned by Open for unregistered names.
var ErrUnknownBackend = errors.New("platform: unknown backend")

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]func() (Platform, error))
)

// Register makes a backend available under name. It panics if name is
// registered twice or open is nil.
func Register(name string, open func() (Platform, error)) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if open == nil {
		panic("platform: Register of nil backend " + name)
	}
	if _, dup := backends[name]; dup {
		panic("platform: Register called twice for backend " + name)
	}
	backends[name] = open
}

// Open returns a new instance of the named backend.
func Open(name string) (Platform, error) {
	backendsMu.RLock()
	open, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return open()
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := maps.Keys(backends)
	slices.Sort(names)
	return names
}
