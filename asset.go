package gpures

import (
	"reflect"

	"github.com/google/uuid"
)

// Handle identifies an asset of type T owned by the asset subsystem.
//
// Handles compare by ID only. The zero value refers to no asset.
type Handle[T any] struct {
	ID uuid.UUID
}

// NewHandle returns a handle with a fresh random ID.
func NewHandle[T any]() Handle[T] {
	return Handle[T]{ID: uuid.New()}
}

// IsZero reports whether h is the zero handle.
func (h Handle[T]) IsZero() bool {
	return h.ID == uuid.Nil
}

// Untyped erases the asset type, keeping it as runtime information so that
// handles of different asset types with equal IDs stay distinct.
func (h Handle[T]) Untyped() UntypedHandle {
	return UntypedHandle{ID: h.ID, Type: reflect.TypeFor[T]()}
}

// String returns the handle ID.
func (h Handle[T]) String() string {
	return h.ID.String()
}

// UntypedHandle is an asset identity with its type erased.
// It is comparable and can be used as a map key.
type UntypedHandle struct {
	ID   uuid.UUID
	Type reflect.Type
}

// Typed converts u back to a Handle[T]. It reports false when u was
// created from a handle of another asset type.
func Typed[T any](u UntypedHandle) (Handle[T], bool) {
	if u.Type != reflect.TypeFor[T]() {
		return Handle[T]{}, false
	}
	return Handle[T]{ID: u.ID}, true
}

// String returns "<type>:<id>".
func (u UntypedHandle) String() string {
	if u.Type == nil {
		return "<untyped>:" + u.ID.String()
	}
	return u.Type.String() + ":" + u.ID.String()
}

// AssetBindingKey addresses one binding slot of one asset.
type AssetBindingKey struct {
	Asset UntypedHandle
	Index uint32
}
