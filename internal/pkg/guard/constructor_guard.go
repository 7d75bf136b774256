// Package guard provides the constructor-guard pattern used by domain
// value objects, entities, and command/query objects to ensure they are
// only created through their designated constructor functions.
//
// A zero-value struct carries a zero-value guard and fails validation,
// which catches accidental direct instantiation before the object is
// used with missing invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; Validate detects zero-value instances.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
