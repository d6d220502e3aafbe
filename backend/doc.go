// Package backend provides a pluggable registry of resource-context
// backends.
//
// Backends register a factory under a name from an init() function and are
// selected at runtime, by name or by priority. The headless backend
// registers itself when imported:
//
//	import _ "github.com/gogpu/gpures/headless"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	ctx := backend.Default()
//
//	// Or request a specific backend
//	ctx, err := backend.Open(backend.BackendHeadless)
//
// Each call returns a new context with its own registry and binding table.
//
// # Available Backends
//
// - "headless": bookkeeping only, always available when imported
// - "wgpu": hardware backends living in other modules
package backend
