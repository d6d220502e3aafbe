package registry

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpures"
)

// guard is a reader-writer lock that poisons when a writer panics.
type guard struct {
	name   string
	mu     sync.RWMutex
	poison atomic.Pointer[gpures.PoisonError]
}

func newGuard(name string) *guard {
	return &guard{name: name}
}

// check panics if the guard has been poisoned.
func (g *guard) check() {
	if p := g.poison.Load(); p != nil {
		panic(p)
	}
}

// read runs fn under the read lock.
func (g *guard) read(fn func()) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.check()
	fn()
}

// write runs fn under the write lock. If fn panics, the guard is poisoned
// before the lock is released and the panic continues.
func (g *guard) write(fn func()) {
	g.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			g.poison.CompareAndSwap(nil, &gpures.PoisonError{Lock: g.name, Cause: r})
			g.mu.Unlock()
			panic(r)
		}
		g.mu.Unlock()
	}()
	g.check()
	fn()
}

// poisoned reports whether a writer panicked while holding the lock.
func (g *guard) poisoned() bool {
	return g.poison.Load() != nil
}
