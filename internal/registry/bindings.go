package registry

import "github.com/gogpu/gpures"

// Bindings maps (asset, slot) pairs to resource handles.
//
// The table records association only. It never checks whether a bound
// handle is still registered, and removing a resource does not unbind it.
type Bindings struct {
	guard    *guard
	bindings map[gpures.AssetBindingKey]gpures.ResourceHandle
}

// NewBindings creates an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{
		guard:    newGuard("bindings"),
		bindings: make(map[gpures.AssetBindingKey]gpures.ResourceHandle),
	}
}

// Bind associates h with slot index of asset, overwriting silently.
func (b *Bindings) Bind(asset gpures.UntypedHandle, index uint32, h gpures.ResourceHandle) {
	key := gpures.AssetBindingKey{Asset: asset, Index: index}
	b.guard.write(func() {
		b.bindings[key] = h
	})
}

// Resolve returns the handle bound to slot index of asset.
func (b *Bindings) Resolve(asset gpures.UntypedHandle, index uint32) (gpures.ResourceHandle, bool) {
	key := gpures.AssetBindingKey{Asset: asset, Index: index}
	var (
		h  gpures.ResourceHandle
		ok bool
	)
	b.guard.read(func() {
		h, ok = b.bindings[key]
	})
	return h, ok
}

// Len returns the number of bound slots.
func (b *Bindings) Len() int {
	var n int
	b.guard.read(func() {
		n = len(b.bindings)
	})
	return n
}

// Poisoned reports whether a writer panicked while holding the lock.
func (b *Bindings) Poisoned() bool {
	return b.guard.poisoned()
}
