package set

import (
	"fmt"
	"reflect"
)

// Domainer is implemented by sets that know the type of their elements.
type Domainer interface {
	Domain() reflect.Type
}

type erased[T any] struct {
	s Interface[T]
}

// Erase adapts a typed set to an untyped one. Items that are not a T are never
// members; Check reports them as ErrTypeMismatch.
func Erase[T any](s Interface[T]) Interface[any] {
	if u, ok := any(s).(Interface[any]); ok {
		if _, ok := u.(Domainer); ok {
			return u
		}
	}
	return erased[T]{s: s}
}

func (e erased[T]) Has(item any) bool {
	v, ok := item.(T)
	return ok && e.s.Has(v)
}

func (e erased[T]) Kind() Kind           { return e.s.Kind() }
func (e erased[T]) String() string       { return e.s.String() }
func (e erased[T]) Domain() reflect.Type { return reflect.TypeFor[T]() }

// Check returns ErrTypeMismatch if item is not in the domain of the set.
func (e erased[T]) Check(item any) error {
	if _, ok := item.(T); !ok {
		return mismatch[T](item)
	}
	return nil
}

// HasChecked is Has with a type check: an item that is not a T is reported as
// ErrTypeMismatch instead of being treated as a non-member.
func HasChecked[T any](s Interface[T], item any) (bool, error) {
	if c, ok := s.(interface{ Check(any) error }); ok {
		if err := c.Check(item); err != nil {
			return false, err
		}
	}

	v, ok := item.(T)
	if !ok {
		return false, mismatch[T](item)
	}

	return s.Has(v), nil
}

func mismatch[T any](item any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, reflect.TypeFor[T](), item)
}

type erasedInts struct {
	s   Interface[any]
	typ reflect.Type
}

// EnumerateErased enumerates an untyped set. The set must report an integer
// Domain, otherwise ErrUnsupportedDomain is returned.
func EnumerateErased(s Interface[any], lower, upper *int, opts ...Option) (*Enumerator[int], error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil set", ErrInvalidArgument)
	}

	d, ok := s.(Domainer)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not declare a domain", ErrUnsupportedDomain, s)
	}

	typ := d.Domain()
	if !isInteger(typ.Kind()) {
		return nil, fmt.Errorf("%w: only integers are supported, %s is over %s", ErrUnsupportedDomain, s, typ)
	}

	return Enumerate[int](erasedInts{s: s, typ: typ}, lower, upper, opts...)
}

func (e erasedInts) Has(n int) bool {
	v := reflect.New(e.typ).Elem()

	// Values that do not fit the element type cannot be members.
	switch {
	case isSigned(e.typ.Kind()):
		if v.OverflowInt(int64(n)) {
			return false
		}
		v.SetInt(int64(n))
	default:
		if n < 0 || v.OverflowUint(uint64(n)) {
			return false
		}
		v.SetUint(uint64(n))
	}

	return e.s.Has(v.Interface())
}

func (e erasedInts) Kind() Kind     { return e.s.Kind() }
func (e erasedInts) String() string { return e.s.String() }

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return isSigned(k)
}
