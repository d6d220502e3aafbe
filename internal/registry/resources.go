package registry

import "github.com/gogpu/gpures"

// Resources maps resource handles to their metadata.
//
// Entries are added on creation and removed explicitly. There is no
// reference counting and no garbage collection.
type Resources struct {
	guard *guard
	infos map[gpures.ResourceHandle]gpures.ResourceInfo
}

// NewResources creates an empty registry.
func NewResources() *Resources {
	return &Resources{
		guard: newGuard("resources"),
		infos: make(map[gpures.ResourceHandle]gpures.ResourceInfo),
	}
}

// Insert records info for h, silently replacing an existing entry.
func (r *Resources) Insert(h gpures.ResourceHandle, info gpures.ResourceInfo) {
	r.guard.write(func() {
		r.infos[h] = info
	})
}

// Remove deletes the entry for h. It is a no-op if h is not present.
func (r *Resources) Remove(h gpures.ResourceHandle) {
	r.guard.write(func() {
		delete(r.infos, h)
	})
}

// Get calls visit exactly once with the entry for h, or nil if absent.
//
// The entry is copied under the read lock and visit runs after the lock is
// released, so visit may call back into the registry.
func (r *Resources) Get(h gpures.ResourceHandle, visit func(info *gpures.ResourceInfo)) {
	var (
		info gpures.ResourceInfo
		ok   bool
	)
	r.guard.read(func() {
		info, ok = r.infos[h]
	})
	if !ok {
		visit(nil)
		return
	}
	visit(&info)
}

// Len returns the number of registered resources.
func (r *Resources) Len() int {
	var n int
	r.guard.read(func() {
		n = len(r.infos)
	})
	return n
}

// Poisoned reports whether a writer panicked while holding the lock.
func (r *Resources) Poisoned() bool {
	return r.guard.poisoned()
}
