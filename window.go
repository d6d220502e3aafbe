package gpures

import (
	"github.com/gogpu/gpucontext"
	"github.com/google/uuid"
)

// WindowID identifies a window owned by the windowing subsystem.
type WindowID uuid.UUID

// NewWindowID returns a fresh random window ID.
func NewWindowID() WindowID {
	return WindowID(uuid.New())
}

// String returns the UUID form of the ID.
func (id WindowID) String() string {
	return uuid.UUID(id).String()
}

// Window is the reference a backend receives when creating a swap chain.
type Window struct {
	// ID identifies the window in later swap-chain calls.
	ID WindowID

	// Title is informational.
	Title string

	// Provider reports the window geometry. May be nil for windows that
	// have no surface yet.
	Provider gpucontext.WindowProvider
}

// PhysicalSize returns the surface size in physical pixels: the provider's
// logical size multiplied by its scale factor. It returns zeros when the
// window has no provider.
func (w *Window) PhysicalSize() (width, height int) {
	if w == nil || w.Provider == nil {
		return 0, 0
	}
	lw, lh := w.Provider.Size()
	scale := w.Provider.ScaleFactor()
	return int(float64(lw) * scale), int(float64(lh) * scale)
}
