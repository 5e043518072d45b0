package set

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scylladb/go-set/iset"
	"golang.org/x/exp/constraints"
)

// Ensure the primitives satisfy set.Interface at compile-time.
var (
	_ Interface[string] = singleton[string]{}
	_ Interface[int]    = parity[int]{}
	_ Interface[string] = custom[string]{}
	_ Interface[int]    = finite{}
	_ Interface[string] = universe[string]{}
	_ Interface[string] = empty[string]{}
)

type singleton[T comparable] struct {
	v T
}

// Singleton returns a set containing only v.
func Singleton[T comparable](v T) Interface[T] {
	return singleton[T]{v: v}
}

func (s singleton[T]) Has(item T) bool { return item == s.v }
func (s singleton[T]) Kind() Kind      { return KindSingleton }

func (s singleton[T]) String() string {
	return fmt.Sprintf("%s(%s)", KindSingleton, literal(s.v))
}

type parity[T constraints.Integer] struct {
	odd bool
}

// Evens returns the set of all even integers.
func Evens[T constraints.Integer]() Interface[T] {
	return parity[T]{}
}

// Odds returns the set of all odd integers, negative ones included.
func Odds[T constraints.Integer]() Interface[T] {
	return parity[T]{odd: true}
}

func (s parity[T]) Has(item T) bool {
	// item%2 is -1 for negative odd numbers, so compare against zero.
	return (item%2 != 0) == s.odd
}

func (s parity[T]) Kind() Kind { return KindParity }

func (s parity[T]) String() string {
	if s.odd {
		return "odds()"
	}
	return "evens()"
}

type custom[T any] struct {
	name string
	fn   func(T) bool
}

// Func returns a set whose membership is decided by fn. The name is only used
// by String. fn must be pure: repeated calls with the same item must agree.
func Func[T any](name string, fn func(T) bool) Interface[T] {
	if fn == nil {
		panic("set: nil predicate")
	}
	return custom[T]{name: name, fn: fn}
}

func (s custom[T]) Has(item T) bool { return s.fn(item) }
func (s custom[T]) Kind() Kind      { return KindCustom }

func (s custom[T]) String() string {
	return fmt.Sprintf("%s(%q)", KindCustom, s.name)
}

type finite struct {
	items *iset.Set
}

// Ints returns a finite set holding the provided items. The items are copied,
// later changes to the caller's slice are not observed.
func Ints(items ...int) Interface[int] {
	return finite{items: iset.New(items...)}
}

func (s finite) Has(item int) bool { return s.items.Has(item) }
func (s finite) Kind() Kind        { return KindFinite }

func (s finite) String() string {
	items := s.items.List()
	sort.Ints(items)

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprint(item))
	}

	return fmt.Sprintf("%s(%s)", KindFinite, strings.Join(parts, ", "))
}

type universe[T any] struct{}

// Universe returns the set holding every element of T.
func Universe[T any]() Interface[T] { return universe[T]{} }

func (universe[T]) Has(T) bool     { return true }
func (universe[T]) Kind() Kind     { return KindUniverse }
func (universe[T]) String() string { return "all()" }

type empty[T any] struct{}

// Empty returns the set holding nothing.
func Empty[T any]() Interface[T] { return empty[T]{} }

func (empty[T]) Has(T) bool     { return false }
func (empty[T]) Kind() Kind     { return KindEmpty }
func (empty[T]) String() string { return "none()" }

func literal(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
