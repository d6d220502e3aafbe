package recording

import (
	"bytes"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpures"
)

// Recorder is a gpures.ResourceContext that records mutating calls before
// returning the inner context's result.
//
// Example:
//
//	rec := recording.NewRecorder(headless.New())
//	buf := rec.CreateBuffer(desc)
//	rec.RemoveBuffer(buf)
//	r := rec.FinishRecording() // two commands
//
// The Recorder is safe for concurrent use. Commands from concurrent callers
// are recorded in completion order. The internal mutex is never held while
// the inner context or a user callback runs.
type Recorder struct {
	inner gpures.ResourceContext

	mu       sync.Mutex
	commands []Command
}

var _ gpures.ResourceContext = (*Recorder)(nil)

// NewRecorder creates a Recorder forwarding to inner.
func NewRecorder(inner gpures.ResourceContext) *Recorder {
	return &Recorder{
		inner:    inner,
		commands: make([]Command, 0, 64),
	}
}

// Inner returns the wrapped context.
func (r *Recorder) Inner() gpures.ResourceContext {
	return r.inner
}

func (r *Recorder) record(cmd Command) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// FinishRecording returns an immutable snapshot of the commands recorded so
// far. The Recorder keeps recording; later commands do not affect the
// snapshot.
func (r *Recorder) FinishRecording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Recording{commands: slices.Clone(r.commands)}
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = r.commands[:0]
	r.mu.Unlock()
}

// --------------------------------------------------------------------------
// Swap Chain
// --------------------------------------------------------------------------

// CreateSwapChain forwards and records the call.
func (r *Recorder) CreateSwapChain(window *gpures.Window) {
	r.inner.CreateSwapChain(window)
	r.record(CreateSwapChainCommand{Window: window})
}

// NextSwapChainTexture forwards and records the call.
func (r *Recorder) NextSwapChainTexture(id gpures.WindowID) gpures.ResourceHandle {
	h := r.inner.NextSwapChainTexture(id)
	r.record(NextSwapChainTextureCommand{Window: id, Handle: h})
	return h
}

// DropSwapChainTexture forwards and records the call.
func (r *Recorder) DropSwapChainTexture(h gpures.ResourceHandle) {
	r.inner.DropSwapChainTexture(h)
	r.record(DropSwapChainTextureCommand{Handle: h})
}

// DropAllSwapChainTextures forwards and records the call.
func (r *Recorder) DropAllSwapChainTextures() {
	r.inner.DropAllSwapChainTextures()
	r.record(DropAllSwapChainTexturesCommand{})
}

// --------------------------------------------------------------------------
// Creation
// --------------------------------------------------------------------------

// CreateSampler forwards and records the call.
func (r *Recorder) CreateSampler(desc *gputypes.SamplerDescriptor) gpures.ResourceHandle {
	h := r.inner.CreateSampler(desc)
	cmd := CreateSamplerCommand{Handle: h}
	if desc != nil {
		d := *desc
		cmd.Desc = &d
	}
	r.record(cmd)
	return h
}

// CreateTexture forwards and records the call.
func (r *Recorder) CreateTexture(desc *gputypes.TextureDescriptor) gpures.ResourceHandle {
	h := r.inner.CreateTexture(desc)
	cmd := CreateTextureCommand{Handle: h}
	if desc != nil {
		d := *desc
		d.ViewFormats = slices.Clone(desc.ViewFormats)
		cmd.Desc = &d
	}
	r.record(cmd)
	return h
}

// CreateBuffer forwards and records the call.
func (r *Recorder) CreateBuffer(desc gputypes.BufferDescriptor) gpures.ResourceHandle {
	h := r.inner.CreateBuffer(desc)
	r.record(CreateBufferCommand{Desc: desc, Handle: h})
	return h
}

// CreateBufferWithData forwards and records the call with a copy of data.
func (r *Recorder) CreateBufferWithData(desc gputypes.BufferDescriptor, data []byte) gpures.ResourceHandle {
	h := r.inner.CreateBufferWithData(desc, data)
	r.record(CreateBufferWithDataCommand{Desc: desc, Data: bytes.Clone(data), Handle: h})
	return h
}

// CreateBufferMapped forwards the call. setup receives the Recorder, so
// resources it creates are recorded too.
func (r *Recorder) CreateBufferMapped(
	desc gputypes.BufferDescriptor,
	setup func(data []byte, ctx gpures.ResourceContext),
) gpures.ResourceHandle {
	var committed []byte
	h := r.inner.CreateBufferMapped(desc, func(data []byte, _ gpures.ResourceContext) {
		setup(data, r)
		committed = bytes.Clone(data)
	})
	r.record(CreateBufferMappedCommand{Desc: desc, Data: committed, Handle: h})
	return h
}

// CreateShaderModule forwards and records the call.
func (r *Recorder) CreateShaderModule(shader gpures.Handle[gpures.Shader], shaders *gpures.ShaderStorage) {
	r.inner.CreateShaderModule(shader, shaders)
	r.record(CreateShaderModuleCommand{Shader: shader, Shaders: shaders})
}

// --------------------------------------------------------------------------
// Removal
// --------------------------------------------------------------------------

// RemoveBuffer forwards and records the call.
func (r *Recorder) RemoveBuffer(h gpures.ResourceHandle) {
	r.inner.RemoveBuffer(h)
	r.record(RemoveCommand{Kind: gpures.ResourceKindBuffer, Handle: h})
}

// RemoveTexture forwards and records the call.
func (r *Recorder) RemoveTexture(h gpures.ResourceHandle) {
	r.inner.RemoveTexture(h)
	r.record(RemoveCommand{Kind: gpures.ResourceKindTexture, Handle: h})
}

// RemoveSampler forwards and records the call.
func (r *Recorder) RemoveSampler(h gpures.ResourceHandle) {
	r.inner.RemoveSampler(h)
	r.record(RemoveCommand{Kind: gpures.ResourceKindSampler, Handle: h})
}

// --------------------------------------------------------------------------
// Queries and Bindings
// --------------------------------------------------------------------------

// GetResourceInfo forwards the query. It is not recorded.
func (r *Recorder) GetResourceInfo(h gpures.ResourceHandle, visit func(info *gpures.ResourceInfo)) {
	r.inner.GetResourceInfo(h, visit)
}

// SetAssetResourceUntyped forwards and records the call.
func (r *Recorder) SetAssetResourceUntyped(asset gpures.UntypedHandle, h gpures.ResourceHandle, index uint32) {
	r.inner.SetAssetResourceUntyped(asset, h, index)
	r.record(SetAssetResourceCommand{Asset: asset, Handle: h, Index: index})
}

// GetAssetResourceUntyped forwards the query. It is not recorded.
func (r *Recorder) GetAssetResourceUntyped(asset gpures.UntypedHandle, index uint32) (gpures.ResourceHandle, bool) {
	return r.inner.GetAssetResourceUntyped(asset, index)
}
