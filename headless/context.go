package headless

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/backend"
	"github.com/gogpu/gpures/internal/registry"
)

// init registers the headless backend on package import.
func init() {
	backend.Register(backend.BackendHeadless, func() gpures.ResourceContext {
		return New()
	})
}

// Context is a gpures.ResourceContext that tracks resources without
// allocating any hardware.
//
// A Context is safe for concurrent use. Copies made with Clone share the
// same registry and binding table.
type Context struct {
	alloc     gpures.Allocator
	resources *registry.Resources
	bindings  *registry.Bindings
	opts      options
}

var _ gpures.ResourceContext = (*Context)(nil)

// New creates a headless context with an empty registry and binding table.
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		resources: registry.NewResources(),
		bindings:  registry.NewBindings(),
		opts:      o,
	}
}

// Clone returns another handle to the same context state. Resources created
// or bound through either handle are visible through both.
func (c *Context) Clone() *Context {
	cp := *c
	return &cp
}

// ResourceCount returns the number of resources with recorded metadata.
func (c *Context) ResourceCount() int {
	return c.resources.Len()
}

// BindingCount returns the number of bound asset slots.
func (c *Context) BindingCount() int {
	return c.bindings.Len()
}

func (c *Context) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return gpures.Logger()
}

// addResourceInfo allocates a handle and records info for it.
func (c *Context) addResourceInfo(info gpures.ResourceInfo) gpures.ResourceHandle {
	h := c.alloc.Allocate()
	c.resources.Insert(h, info)
	c.logger().Debug("headless: resource created", "handle", uint64(h), "kind", info.Kind.String())
	return h
}

func (c *Context) removeResourceInfo(h gpures.ResourceHandle, kind gpures.ResourceKind) {
	c.resources.Remove(h)
	c.logger().Debug("headless: resource removed", "handle", uint64(h), "kind", kind.String())
}

// CreateSwapChain does nothing: there is no surface to present to.
func (c *Context) CreateSwapChain(window *gpures.Window) {
	if window == nil {
		return
	}
	w, h := window.PhysicalSize()
	c.logger().Debug("headless: swap chain ignored",
		"window", window.ID.String(), "width", w, "height", h)
}

// NextSwapChainTexture returns a fresh handle with no recorded metadata.
func (c *Context) NextSwapChainTexture(id gpures.WindowID) gpures.ResourceHandle {
	h := c.alloc.Allocate()
	c.logger().Debug("headless: swap chain texture", "window", id.String(), "handle", uint64(h))
	return h
}

// DropSwapChainTexture does nothing.
func (c *Context) DropSwapChainTexture(gpures.ResourceHandle) {}

// DropAllSwapChainTextures does nothing.
func (c *Context) DropAllSwapChainTextures() {}

// CreateSampler records Sampler metadata.
func (c *Context) CreateSampler(*gputypes.SamplerDescriptor) gpures.ResourceHandle {
	return c.addResourceInfo(gpures.SamplerInfo())
}

// CreateTexture records Texture metadata.
func (c *Context) CreateTexture(*gputypes.TextureDescriptor) gpures.ResourceHandle {
	return c.addResourceInfo(gpures.TextureInfo())
}

// CreateBuffer records Buffer metadata carrying desc.
func (c *Context) CreateBuffer(desc gputypes.BufferDescriptor) gpures.ResourceHandle {
	return c.addResourceInfo(gpures.BufferInfo(desc))
}

// CreateBufferWithData records Buffer metadata carrying desc and discards data.
func (c *Context) CreateBufferWithData(desc gputypes.BufferDescriptor, _ []byte) gpures.ResourceHandle {
	return c.addResourceInfo(gpures.BufferInfo(desc))
}

// CreateBufferMapped runs setup on a zeroed scratch slice of desc.Size bytes
// and then discards the content. No lock is held while setup runs.
func (c *Context) CreateBufferMapped(
	desc gputypes.BufferDescriptor,
	setup func(data []byte, ctx gpures.ResourceContext),
) gpures.ResourceHandle {
	scratch := make([]byte, desc.Size)
	setup(scratch, c)

	if !c.opts.mappedBufferMetadata {
		return c.alloc.Allocate()
	}
	return c.addResourceInfo(gpures.BufferInfo(desc))
}

// CreateShaderModule checks that the shader asset exists. Nothing is built.
func (c *Context) CreateShaderModule(shader gpures.Handle[gpures.Shader], shaders *gpures.ShaderStorage) {
	if shaders == nil {
		c.logger().Warn("headless: shader module requested without a shader store", "shader", shader.String())
		return
	}
	s, ok := shaders.Get(shader)
	if !ok {
		c.logger().Warn("headless: shader asset not found", "shader", shader.String())
		return
	}
	c.logger().Debug("headless: shader module ignored", "shader", shader.String(), "label", s.Label)
}

// RemoveBuffer drops buffer metadata. Unknown handles are ignored.
func (c *Context) RemoveBuffer(h gpures.ResourceHandle) {
	c.removeResourceInfo(h, gpures.ResourceKindBuffer)
}

// RemoveTexture drops texture metadata. Unknown handles are ignored.
func (c *Context) RemoveTexture(h gpures.ResourceHandle) {
	c.removeResourceInfo(h, gpures.ResourceKindTexture)
}

// RemoveSampler drops sampler metadata. Unknown handles are ignored.
func (c *Context) RemoveSampler(h gpures.ResourceHandle) {
	c.removeResourceInfo(h, gpures.ResourceKindSampler)
}

// GetResourceInfo calls visit with the metadata recorded for h, or nil.
func (c *Context) GetResourceInfo(h gpures.ResourceHandle, visit func(info *gpures.ResourceInfo)) {
	c.resources.Get(h, visit)
}

// SetAssetResourceUntyped binds h to slot index of asset.
func (c *Context) SetAssetResourceUntyped(asset gpures.UntypedHandle, h gpures.ResourceHandle, index uint32) {
	c.bindings.Bind(asset, index, h)
}

// GetAssetResourceUntyped returns the handle bound to slot index of asset.
func (c *Context) GetAssetResourceUntyped(asset gpures.UntypedHandle, index uint32) (gpures.ResourceHandle, bool) {
	return c.bindings.Resolve(asset, index)
}
