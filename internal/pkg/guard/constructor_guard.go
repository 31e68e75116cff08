// Package guard implements a defensive construction pattern for value objects
// and entities: a struct embedding a ConstructorGuard can tell whether it was
// created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed one in a struct and set it with NewConstructorGuard inside
// the constructor; Validate then fails for any instance that bypassed it.
//
// Example:
//
//	type Serial struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSerial(value string) (Serial, error) {
//	    // ... validation ...
//	    return Serial{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Serial) Validate() error {
//	    return s.guard.Validate(ErrSerialIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor and
// validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
