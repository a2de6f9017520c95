// Package order resolves the sort direction into an ordering predicate.
//
// Every comparison in sortkit goes through a predicate produced here; the
// algorithm bodies never compare elements with a raw < or >. This keeps the
// ascending/descending duality in exactly one place.
package order

import "golang.org/x/exp/constraints"

// Before returns the strict ordering predicate for the given direction.
// The predicate reports whether a must be placed before b: a < b when
// ascending, a > b when descending. It is pure and never matches equal
// elements, which is what stable algorithms rely on.
func Before[T constraints.Ordered](ascending bool) func(a, b T) bool {
	if ascending {
		return func(a, b T) bool { return a < b }
	}

	return func(a, b T) bool { return a > b }
}
