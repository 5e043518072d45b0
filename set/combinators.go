package set

import "fmt"

type binary[T any] struct {
	kind Kind
	a, b Interface[T]
}

// Union returns a set holding the items in either a or b.
func Union[T any](a, b Interface[T]) Interface[T] {
	return newBinary(KindUnion, a, b)
}

// Intersection returns a set holding only the items in both a and b.
func Intersection[T any](a, b Interface[T]) Interface[T] {
	return newBinary(KindIntersection, a, b)
}

// Difference returns a set holding the items in a that are not in b.
func Difference[T any](a, b Interface[T]) Interface[T] {
	return newBinary(KindDifference, a, b)
}

// SymmetricDifference returns a set with all items which are in either set,
// but not both.
func SymmetricDifference[T any](a, b Interface[T]) Interface[T] {
	return newBinary(KindSymmetricDifference, a, b)
}

func newBinary[T any](kind Kind, a, b Interface[T]) Interface[T] {
	if a == nil || b == nil {
		panic(fmt.Sprintf("set: nil operand to %s", kind))
	}
	return binary[T]{kind: kind, a: a, b: b}
}

func (s binary[T]) Has(item T) bool {
	switch s.kind {
	case KindUnion:
		return s.a.Has(item) || s.b.Has(item)
	case KindIntersection:
		return s.a.Has(item) && s.b.Has(item)
	case KindDifference:
		return s.a.Has(item) && !s.b.Has(item)
	case KindSymmetricDifference:
		return s.a.Has(item) != s.b.Has(item)
	}
	panic(fmt.Sprintf("set: unexpected combinator %s", s.kind))
}

func (s binary[T]) Kind() Kind { return s.kind }

func (s binary[T]) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.kind, s.a, s.b)
}

type complement[T any] struct {
	a Interface[T]
}

// Complement returns a set holding every item that is not in a.
func Complement[T any](a Interface[T]) Interface[T] {
	if a == nil {
		panic(fmt.Sprintf("set: nil operand to %s", KindComplement))
	}
	return complement[T]{a: a}
}

func (s complement[T]) Has(item T) bool { return !s.a.Has(item) }
func (s complement[T]) Kind() Kind      { return KindComplement }

func (s complement[T]) String() string {
	return fmt.Sprintf("%s(%s)", KindComplement, s.a)
}
