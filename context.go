package gpures

import "github.com/gogpu/gputypes"

// ResourceContext is the contract every resource backend satisfies.
//
// Engine code holds a ResourceContext and never a concrete backend. All
// methods are synchronous and safe for concurrent use.
//
// Resource lifecycle:
//   - Create* methods allocate a handle and record metadata for it
//   - Remove* methods drop the metadata; removing an unknown or already
//     removed handle is a no-op
//   - handles are never reused, so queries on a removed handle report absence
//
// No method returns an error. Absence is reported structurally: a nil info
// pointer in [ResourceContext.GetResourceInfo], ok == false from
// [ResourceContext.GetAssetResourceUntyped].
type ResourceContext interface {
	// === Swap Chain ===

	// CreateSwapChain prepares presentation for window.
	CreateSwapChain(window *Window)

	// NextSwapChainTexture returns a handle to the next presentation image of
	// the window's swap chain. Swap-chain textures are presentation-only:
	// no metadata is recorded for them, so GetResourceInfo reports them
	// absent.
	NextSwapChainTexture(id WindowID) ResourceHandle

	// DropSwapChainTexture releases a presentation image.
	DropSwapChainTexture(h ResourceHandle)

	// DropAllSwapChainTextures releases every presentation image.
	DropAllSwapChainTextures()

	// === Resource Creation ===

	// CreateSampler creates a sampler and records Sampler metadata.
	CreateSampler(desc *gputypes.SamplerDescriptor) ResourceHandle

	// CreateTexture creates a texture and records Texture metadata.
	CreateTexture(desc *gputypes.TextureDescriptor) ResourceHandle

	// CreateBuffer creates a buffer and records Buffer metadata carrying desc.
	CreateBuffer(desc gputypes.BufferDescriptor) ResourceHandle

	// CreateBufferWithData creates a buffer initialized with data and records
	// Buffer metadata carrying desc.
	CreateBufferWithData(desc gputypes.BufferDescriptor, data []byte) ResourceHandle

	// CreateBufferMapped creates a buffer whose content is written by setup.
	//
	// setup is called exactly once, before CreateBufferMapped returns, with a
	// zeroed slice of exactly desc.Size bytes and the context itself, so it
	// may create further resources. The backend commits the slice content
	// after setup returns. No internal lock is held while setup runs.
	CreateBufferMapped(desc gputypes.BufferDescriptor, setup func(data []byte, ctx ResourceContext)) ResourceHandle

	// CreateShaderModule builds the backend module for a shader asset.
	CreateShaderModule(shader Handle[Shader], shaders *ShaderStorage)

	// === Resource Removal ===

	// RemoveBuffer drops a buffer.
	RemoveBuffer(h ResourceHandle)

	// RemoveTexture drops a texture.
	RemoveTexture(h ResourceHandle)

	// RemoveSampler drops a sampler.
	RemoveSampler(h ResourceHandle)

	// === Queries ===

	// GetResourceInfo calls visit exactly once, synchronously, with the
	// metadata recorded for h, or nil if there is none. The pointer is only
	// valid for the duration of the call. No internal lock is held while
	// visit runs.
	GetResourceInfo(h ResourceHandle, visit func(info *ResourceInfo))

	// === Asset Bindings ===

	// SetAssetResourceUntyped binds h to slot index of asset, replacing any
	// previous binding.
	SetAssetResourceUntyped(asset UntypedHandle, h ResourceHandle, index uint32)

	// GetAssetResourceUntyped returns the handle bound to slot index of
	// asset. The handle may refer to a resource that has since been removed.
	GetAssetResourceUntyped(asset UntypedHandle, index uint32) (ResourceHandle, bool)
}

// SetAssetResource binds h to slot index of a typed asset.
func SetAssetResource[T any](ctx ResourceContext, asset Handle[T], h ResourceHandle, index uint32) {
	ctx.SetAssetResourceUntyped(asset.Untyped(), h, index)
}

// GetAssetResource returns the handle bound to slot index of a typed asset.
func GetAssetResource[T any](ctx ResourceContext, asset Handle[T], index uint32) (ResourceHandle, bool) {
	return ctx.GetAssetResourceUntyped(asset.Untyped(), index)
}

// LookupResourceInfo returns a copy of the metadata recorded for h.
// It is a convenience over GetResourceInfo for callers that do not need the
// callback form.
func LookupResourceInfo(ctx ResourceContext, h ResourceHandle) (ResourceInfo, bool) {
	var (
		info  ResourceInfo
		found bool
	)
	ctx.GetResourceInfo(h, func(i *ResourceInfo) {
		if i != nil {
			info, found = *i, true
		}
	})
	return info, found
}
