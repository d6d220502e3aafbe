package gpures

import "github.com/gogpu/gputypes"

// ResourceKind identifies the variant of a [ResourceInfo].
type ResourceKind uint8

// Resource kinds.
const (
	// ResourceKindBuffer is a GPU buffer. Its descriptor is kept in the info.
	ResourceKindBuffer ResourceKind = iota + 1

	// ResourceKindTexture is a GPU texture.
	ResourceKindTexture

	// ResourceKindSampler is a texture sampler.
	ResourceKindSampler
)

// resourceKindNames maps ResourceKind values to their string representation.
var resourceKindNames = [...]string{
	ResourceKindBuffer:  "Buffer",
	ResourceKindTexture: "Texture",
	ResourceKindSampler: "Sampler",
}

// String returns the string representation of a ResourceKind.
func (k ResourceKind) String() string {
	if int(k) < len(resourceKindNames) && resourceKindNames[k] != "" {
		return resourceKindNames[k]
	}
	return "Unknown"
}

// ResourceInfo is the metadata recorded for a live resource.
//
// It is a tagged union over Buffer, Texture and Sampler. Only the buffer
// variant carries data: the descriptor it was created with. Build values
// with [BufferInfo], [TextureInfo] and [SamplerInfo].
type ResourceInfo struct {
	// Kind selects the variant.
	Kind ResourceKind

	// Buffer is the creation descriptor. Valid only when Kind is
	// ResourceKindBuffer.
	Buffer gputypes.BufferDescriptor
}

// BufferInfo returns the Buffer variant for desc.
func BufferInfo(desc gputypes.BufferDescriptor) ResourceInfo {
	return ResourceInfo{Kind: ResourceKindBuffer, Buffer: desc}
}

// TextureInfo returns the Texture variant.
func TextureInfo() ResourceInfo {
	return ResourceInfo{Kind: ResourceKindTexture}
}

// SamplerInfo returns the Sampler variant.
func SamplerInfo() ResourceInfo {
	return ResourceInfo{Kind: ResourceKindSampler}
}

// AsBuffer returns the buffer descriptor if the info is the Buffer variant.
func (i ResourceInfo) AsBuffer() (gputypes.BufferDescriptor, bool) {
	if i.Kind != ResourceKindBuffer {
		return gputypes.BufferDescriptor{}, false
	}
	return i.Buffer, true
}

// IsTexture reports whether the info is the Texture variant.
func (i ResourceInfo) IsTexture() bool { return i.Kind == ResourceKindTexture }

// IsSampler reports whether the info is the Sampler variant.
func (i ResourceInfo) IsSampler() bool { return i.Kind == ResourceKindSampler }

// String returns the variant name.
func (i ResourceInfo) String() string {
	return i.Kind.String()
}
