package gpures

import (
	"sync"

	"github.com/google/uuid"
)

// AssetStorage is a concurrent in-memory store of assets of type T,
// keyed by [Handle].
//
// The asset pipeline owns storages; resource contexts only read from them
// (see [ResourceContext.CreateShaderModule]).
type AssetStorage[T any] struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]*T
}

// NewAssetStorage creates an empty storage.
func NewAssetStorage[T any]() *AssetStorage[T] {
	return &AssetStorage[T]{
		assets: make(map[uuid.UUID]*T),
	}
}

// Add stores asset under a new handle and returns it.
func (s *AssetStorage[T]) Add(asset *T) Handle[T] {
	h := NewHandle[T]()
	s.Set(h, asset)
	return h
}

// Set stores asset under h, replacing any previous asset.
func (s *AssetStorage[T]) Set(h Handle[T], asset *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[h.ID] = asset
}

// Get returns the asset stored under h.
func (s *AssetStorage[T]) Get(h Handle[T]) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assets[h.ID]
	return a, ok
}

// Remove deletes the asset stored under h. Removing an unknown handle is a no-op.
func (s *AssetStorage[T]) Remove(h Handle[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assets, h.ID)
}

// Len returns the number of stored assets.
func (s *AssetStorage[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}
