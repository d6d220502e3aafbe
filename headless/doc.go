// Package headless provides the reference gpures.ResourceContext.
//
// The headless context performs all of the bookkeeping a real backend does
// (handle allocation, resource metadata, asset bindings) and none of the
// hardware work. Buffer contents are discarded, shader modules are not
// built and swap-chain calls do nothing. Use it in tests, in tooling and in
// execution modes that never present a frame.
//
// Importing the package registers it with the backend registry:
//
//	import _ "github.com/gogpu/gpures/headless"
//
//	ctx := backend.Get(backend.BackendHeadless)
//
// # Documented Exceptions
//
// Swap-chain textures returned by NextSwapChainTexture get a fresh handle
// but no metadata: they are presentation images, not general resources, so
// GetResourceInfo reports them absent.
//
// Mapped buffers record Buffer metadata like CreateBuffer does. Use
// WithMappedBufferMetadata(false) to leave them unregistered.
package headless
