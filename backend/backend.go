package backend

import (
	"errors"

	"github.com/gogpu/gpures"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend name constants.
const (
	// BackendHeadless is the name of the bookkeeping-only backend
	// (github.com/gogpu/gpures/headless).
	BackendHeadless = "headless"

	// BackendWGPU is the name real WebGPU backends register under.
	// No implementation ships in this module.
	BackendWGPU = "wgpu"
)

// Factory creates a new resource context.
type Factory func() gpures.ResourceContext
