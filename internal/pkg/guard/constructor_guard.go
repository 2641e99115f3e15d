// Package guard marks values that were built by their constructor so that
// zero values of commands, queries and value objects can be rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into structs that must only be created
// through a New* function. The zero value reports "not constructed".
//
//	type AddToBasketCommand struct {
//	    productID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddToBasketCommand) Validate() error {
//	    return c.guard.Validate(ErrAddToBasketCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
