// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

func TestBackends(t *testing.T) {
	if !slices.Contains(Backends(), DefaultBackend) {
		t.Errorf("Backends() = %v, want %q registered", Backends(), DefaultBackend)
	}
	p, err := Open(DefaultBackend)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*EGL); !ok {
		t.Errorf("Open(%q) returned %T", DefaultBackend, p)
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("vulkan")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(vulkan) error %v, want ErrUnknownBackend", err)
	}
}

func TestRegister(t *testing.T) {
	f := newFakeDriver()
	Register("test-fake", func() (Platform, error) { return NewEGL(f), nil })
	t.Cleanup(func() {
		backendsMu.Lock()
		delete(backends, "test-fake")
		backendsMu.Unlock()
	})
	names := Backends()
	if !slices.IsSorted(names) {
		t.Errorf("Backends() = %v, not sorted", names)
	}
	if _, err := Open("test-fake"); err != nil {
		t.Error(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-fake", func() (Platform, error) { return nil, nil })
}
