// Package guard provides ConstructorGuard, a marker that distinguishes values built by their
// constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value is a zero value
// and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, queries and entities that must only be built
// through their constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrQueryNotConstructed = errors.New("Query must be created via NewQuery")
//
//	type Query struct {
//	    courierID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewQuery(id kernel.UUID) Query {
//	    return Query{courierID: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Query) Validate() error {
//	    return q.guard.Validate(ErrQueryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards. For zero values it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
