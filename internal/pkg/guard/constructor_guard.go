// Package guard implements the constructor guard pattern for domain objects.
//
// Embedding a ConstructorGuard in a value object or entity makes zero-value
// instances detectable: only objects built through their designated constructor
// carry a constructed guard, so Validate can reject structs that bypassed the
// constructor and its validation rules.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate when
// no specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// designated constructor. The zero value is "not constructed" and fails
// validation, which is what makes the pattern work.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
