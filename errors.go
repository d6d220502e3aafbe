package gpures

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidShader is returned when a shader asset cannot be built from
	// its source.
	ErrInvalidShader = errors.New("gpures: invalid shader")

	// ErrPoisoned is the sentinel wrapped by [PoisonError].
	ErrPoisoned = errors.New("gpures: shared state poisoned")
)

// PoisonError reports that a lock guarding context state was released by a
// writer that panicked. The guarded state may be inconsistent, so the
// context instance is unusable from then on.
//
// PoisonError is raised with panic, never returned: there is no recovery
// path for a poisoned context.
type PoisonError struct {
	// Lock names the poisoned structure ("resources", "bindings").
	Lock string

	// Cause is the value the writer panicked with.
	Cause any
}

// Error implements error.
func (e *PoisonError) Error() string {
	return fmt.Sprintf("gpures: %s lock poisoned by panic: %v", e.Lock, e.Cause)
}

// Unwrap returns ErrPoisoned.
func (e *PoisonError) Unwrap() error {
	return ErrPoisoned
}
