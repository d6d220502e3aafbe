package recording

import (
	"github.com/gogpu/gpures"
)

// Recording is an immutable list of recorded commands.
// It can be replayed onto any gpures.ResourceContext.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands in order.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto ctx and returns the mapping from
// recorded handles to the handles ctx issued in their place.
//
// Handles that were not created within the recording (for example handles
// bound or removed but created elsewhere) are passed through unchanged.
func (r *Recording) Playback(ctx gpures.ResourceContext) map[gpures.ResourceHandle]gpures.ResourceHandle {
	remap := make(map[gpures.ResourceHandle]gpures.ResourceHandle)
	resolve := func(h gpures.ResourceHandle) gpures.ResourceHandle {
		if n, ok := remap[h]; ok {
			return n
		}
		return h
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case CreateSwapChainCommand:
			ctx.CreateSwapChain(c.Window)
		case NextSwapChainTextureCommand:
			remap[c.Handle] = ctx.NextSwapChainTexture(c.Window)
		case DropSwapChainTextureCommand:
			ctx.DropSwapChainTexture(resolve(c.Handle))
		case DropAllSwapChainTexturesCommand:
			ctx.DropAllSwapChainTextures()
		case CreateSamplerCommand:
			remap[c.Handle] = ctx.CreateSampler(c.Desc)
		case CreateTextureCommand:
			remap[c.Handle] = ctx.CreateTexture(c.Desc)
		case CreateBufferCommand:
			remap[c.Handle] = ctx.CreateBuffer(c.Desc)
		case CreateBufferWithDataCommand:
			remap[c.Handle] = ctx.CreateBufferWithData(c.Desc, c.Data)
		case CreateBufferMappedCommand:
			// Nested creations were recorded as separate commands, so
			// setup only restores the committed bytes.
			remap[c.Handle] = ctx.CreateBufferMapped(c.Desc, func(data []byte, _ gpures.ResourceContext) {
				copy(data, c.Data)
			})
		case CreateShaderModuleCommand:
			ctx.CreateShaderModule(c.Shader, c.Shaders)
		case RemoveCommand:
			h := resolve(c.Handle)
			switch c.Kind {
			case gpures.ResourceKindBuffer:
				ctx.RemoveBuffer(h)
			case gpures.ResourceKindTexture:
				ctx.RemoveTexture(h)
			case gpures.ResourceKindSampler:
				ctx.RemoveSampler(h)
			}
		case SetAssetResourceCommand:
			ctx.SetAssetResourceUntyped(c.Asset, resolve(c.Handle), c.Index)
		}
	}

	gpures.Logger().Debug("recording: playback finished",
		"commands", len(r.commands), "handles", len(remap))
	return remap
}
