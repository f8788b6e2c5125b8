// Package guard marks values that went through their constructor, so that
// zero-value commands, queries and value objects can be told apart from
// validated ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be built by their
// NewX function. Its zero value fails validation.
//
// Example:
//
//	type AddToCartCommand struct {
//	    productID int64
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddToCartCommand) Validate() error {
//	    return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
