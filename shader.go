package gpures

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Shader is a shader asset: source code for one or more pipeline stages.
//
// Backends turn shaders into shader modules in
// [ResourceContext.CreateShaderModule]. This package never compiles them.
type Shader struct {
	// Label is an optional debug label.
	Label string

	// Stage lists the stages the source provides entry points for.
	Stage gputypes.ShaderStage

	// Source is the shader source (WGSL, SPIR-V or GLSL).
	Source gputypes.ShaderSource
}

// ShaderStorage is the asset store for shaders.
type ShaderStorage = AssetStorage[Shader]

// NewShaderStorage creates an empty shader store.
func NewShaderStorage() *ShaderStorage {
	return NewAssetStorage[Shader]()
}

// NewWGSLShader builds a WGSL shader asset. The source is parsed (not
// compiled) so that syntax errors surface at load time rather than when a
// backend first builds the module.
func NewWGSLShader(label string, stage gputypes.ShaderStage, code string) (*Shader, error) {
	if _, err := naga.Parse(code); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidShader, label, err)
	}
	return &Shader{
		Label:  label,
		Stage:  stage,
		Source: gputypes.ShaderSourceWGSL{Code: code},
	}, nil
}

// NewSPIRVShader builds a SPIR-V shader asset from 32-bit words.
func NewSPIRVShader(label string, stage gputypes.ShaderStage, words []uint32) (*Shader, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q: empty SPIR-V module", ErrInvalidShader, label)
	}
	return &Shader{
		Label:  label,
		Stage:  stage,
		Source: gputypes.ShaderSourceSPIRV{Code: words},
	}, nil
}
