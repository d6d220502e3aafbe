package backend

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gpures"
)

// backends holds registered backend factories.
// Priority order for selection (first available wins):
// a hardware backend when one is linked in, headless otherwise.
var backends = gpucontext.NewRegistry[gpures.ResourceContext](
	gpucontext.WithPriority(BackendWGPU, BackendHeadless),
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	backends.Register(name, factory)
	gpures.Logger().Debug("backend: registered", "name", name)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	backends.Unregister(name)
}

// Available returns a list of registered backend names.
func Available() []string {
	return backends.Available()
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	return backends.Has(name)
}

// Get returns a new context from the named backend.
// Returns nil if the backend is not registered.
func Get(name string) gpures.ResourceContext {
	return backends.Get(name)
}

// Open is like Get but returns ErrBackendNotAvailable for unknown names.
func Open(name string) (gpures.ResourceContext, error) {
	ctx := backends.Get(name)
	if ctx == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	gpures.Logger().Info("backend: selected", "name", name)
	return ctx, nil
}

// DefaultName returns the name of the backend Default would use,
// or "" if none is registered.
func DefaultName() string {
	return backends.BestName()
}

// Default returns a new context from the best available backend.
// Returns nil if no backends are registered.
func Default() gpures.ResourceContext {
	return backends.Best()
}

// MustDefault returns the default backend or panics.
func MustDefault() gpures.ResourceContext {
	ctx := Default()
	if ctx == nil {
		panic("backend: no backend available")
	}
	return ctx
}
