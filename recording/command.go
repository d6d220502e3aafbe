package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpures"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one mutating ResourceContext method.
type CommandType uint8

const (
	// Swap chain commands
	CmdCreateSwapChain          CommandType = iota // Create a swap chain for a window
	CmdNextSwapChainTexture                        // Acquire a presentation image
	CmdDropSwapChainTexture                        // Release a presentation image
	CmdDropAllSwapChainTextures                    // Release all presentation images

	// Creation commands
	CmdCreateSampler        // Create a sampler
	CmdCreateTexture        // Create a texture
	CmdCreateBuffer         // Create an empty buffer
	CmdCreateBufferWithData // Create a buffer from bytes
	CmdCreateBufferMapped   // Create a buffer written by a setup callback
	CmdCreateShaderModule   // Build a shader module

	// Removal and binding commands
	CmdRemove           // Remove a buffer, texture or sampler
	CmdSetAssetResource // Bind a resource to an asset slot
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdCreateSwapChain:          "CreateSwapChain",
	CmdNextSwapChainTexture:     "NextSwapChainTexture",
	CmdDropSwapChainTexture:     "DropSwapChainTexture",
	CmdDropAllSwapChainTextures: "DropAllSwapChainTextures",
	CmdCreateSampler:            "CreateSampler",
	CmdCreateTexture:            "CreateTexture",
	CmdCreateBuffer:             "CreateBuffer",
	CmdCreateBufferWithData:     "CreateBufferWithData",
	CmdCreateBufferMapped:       "CreateBufferMapped",
	CmdCreateShaderModule:       "CreateShaderModule",
	CmdRemove:                   "Remove",
	CmdSetAssetResource:         "SetAssetResource",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Swap Chain Commands
// --------------------------------------------------------------------------

// CreateSwapChainCommand records CreateSwapChain.
type CreateSwapChainCommand struct {
	Window *gpures.Window
}

// Type implements Command.
func (CreateSwapChainCommand) Type() CommandType { return CmdCreateSwapChain }

// NextSwapChainTextureCommand records NextSwapChainTexture and the handle
// it returned.
type NextSwapChainTextureCommand struct {
	Window gpures.WindowID
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (NextSwapChainTextureCommand) Type() CommandType { return CmdNextSwapChainTexture }

// DropSwapChainTextureCommand records DropSwapChainTexture.
type DropSwapChainTextureCommand struct {
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (DropSwapChainTextureCommand) Type() CommandType { return CmdDropSwapChainTexture }

// DropAllSwapChainTexturesCommand records DropAllSwapChainTextures.
type DropAllSwapChainTexturesCommand struct{}

// Type implements Command.
func (DropAllSwapChainTexturesCommand) Type() CommandType { return CmdDropAllSwapChainTextures }

// --------------------------------------------------------------------------
// Creation Commands
// --------------------------------------------------------------------------

// CreateSamplerCommand records CreateSampler. Desc is a private copy, nil if
// the caller passed nil.
type CreateSamplerCommand struct {
	Desc   *gputypes.SamplerDescriptor
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (CreateSamplerCommand) Type() CommandType { return CmdCreateSampler }

// CreateTextureCommand records CreateTexture. Desc is a private copy, nil if
// the caller passed nil.
type CreateTextureCommand struct {
	Desc   *gputypes.TextureDescriptor
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (CreateTextureCommand) Type() CommandType { return CmdCreateTexture }

// CreateBufferCommand records CreateBuffer.
type CreateBufferCommand struct {
	Desc   gputypes.BufferDescriptor
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (CreateBufferCommand) Type() CommandType { return CmdCreateBuffer }

// CreateBufferWithDataCommand records CreateBufferWithData with a copy of
// the initial content.
type CreateBufferWithDataCommand struct {
	Desc   gputypes.BufferDescriptor
	Data   []byte
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (CreateBufferWithDataCommand) Type() CommandType { return CmdCreateBufferWithData }

// CreateBufferMappedCommand records CreateBufferMapped with the content the
// setup callback left in the mapped slice.
type CreateBufferMappedCommand struct {
	Desc   gputypes.BufferDescriptor
	Data   []byte
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (CreateBufferMappedCommand) Type() CommandType { return CmdCreateBufferMapped }

// CreateShaderModuleCommand records CreateShaderModule.
type CreateShaderModuleCommand struct {
	Shader  gpures.Handle[gpures.Shader]
	Shaders *gpures.ShaderStorage
}

// Type implements Command.
func (CreateShaderModuleCommand) Type() CommandType { return CmdCreateShaderModule }

// --------------------------------------------------------------------------
// Removal and Binding Commands
// --------------------------------------------------------------------------

// RemoveCommand records RemoveBuffer, RemoveTexture or RemoveSampler.
type RemoveCommand struct {
	Kind   gpures.ResourceKind
	Handle gpures.ResourceHandle
}

// Type implements Command.
func (RemoveCommand) Type() CommandType { return CmdRemove }

// SetAssetResourceCommand records SetAssetResourceUntyped.
type SetAssetResourceCommand struct {
	Asset  gpures.UntypedHandle
	Handle gpures.ResourceHandle
	Index  uint32
}

// Type implements Command.
func (SetAssetResourceCommand) Type() CommandType { return CmdSetAssetResource }
