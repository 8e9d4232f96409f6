package backend

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/ggplot"
)

// Factory creates a surface of the given size whose Present writes to w.
type Factory func(w io.Writer, width, height int) (DrawingBackend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
//
// Register panics if factory is nil or the name is already taken, so
// that duplicate registrations surface during program initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the sorted names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open creates a surface through the factory registered under name.
// The error mentions a forgotten import when the name is unknown.
func Open(name string, w io.Writer, width, height int) (DrawingBackend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	b, err := factory(w, width, height)
	if err != nil {
		return nil, fmt.Errorf("backend: open %q: %w", name, err)
	}
	ggplot.Logger().Info("backend opened", "name", name, "width", width, "height", height)
	return b, nil
}
