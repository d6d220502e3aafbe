package gpures

import (
	"strconv"
	"sync/atomic"
)

// ResourceHandle is an opaque reference to a GPU resource.
//
// Handles are plain values: copy them freely, compare them with ==, use them
// as map keys. Ordering follows issue order. The zero value is
// [InvalidResourceHandle] and is never issued.
type ResourceHandle uint64

// InvalidResourceHandle is the zero handle. No resource ever has it.
const InvalidResourceHandle ResourceHandle = 0

// IsValid reports whether h was issued by the allocator.
func (h ResourceHandle) IsValid() bool {
	return h != InvalidResourceHandle
}

// String returns a debug representation such as "ResourceHandle(42)".
func (h ResourceHandle) String() string {
	return "ResourceHandle(" + strconv.FormatUint(uint64(h), 10) + ")"
}

// handleCounter is shared by every backend in the process so that handles
// stay unique even when several contexts coexist.
var handleCounter atomic.Uint64

// NewResourceHandle returns a handle distinct from every handle previously
// or concurrently returned in this process. Freed handles are never reissued.
//
// Safe for concurrent use.
func NewResourceHandle() ResourceHandle {
	return ResourceHandle(handleCounter.Add(1))
}

// Allocator issues resource handles for a backend.
//
// The zero value is ready to use. All allocators draw from the same
// process-wide counter, so a backend may embed its own Allocator without
// risking collisions with handles issued elsewhere.
type Allocator struct{}

// Allocate returns a fresh handle. See [NewResourceHandle].
func (Allocator) Allocate() ResourceHandle {
	return NewResourceHandle()
}
