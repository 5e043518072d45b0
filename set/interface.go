// Package set implements intensional sets: sets described by a membership
// predicate rather than by the elements they hold.
//
// Sets are immutable. Combinators such as Union never evaluate their operands
// up front; every call to Has delegates to the operands again. Integer sets
// can be walked over a bounded window with Enumerate.
package set

type Interface[T any] interface {
	// Returns whether the item is a member of the set.
	Has(T) bool

	// Returns the variant of the set.
	Kind() Kind

	// Provides an expression representation of the set, e.g.
	// "union(singleton(1), evens())".
	String() string
}
