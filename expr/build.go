package expr

import (
	"fmt"
	"go/ast"

	"github.com/rdeusser/intension/set"
)

// builder turns a type checked expression into a set over T. The integer-only
// constructors are nil for domains that do not support them.
type builder[T comparable] struct {
	domain Domain
	evens  func() set.Interface[T]
	odds   func() set.Interface[T]
	ints   func(...int) set.Interface[T]
}

var (
	intBuilder = builder[int]{
		domain: DomainInt,
		evens:  set.Evens[int],
		odds:   set.Odds[int],
		ints:   set.Ints,
	}
	stringBuilder = builder[string]{
		domain: DomainString,
	}
)

func (b builder[T]) build(node ast.Expr) (set.Interface[T], error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return b.build(n.X)

	case *ast.UnaryExpr:
		operand, err := b.build(n.X)
		if err != nil {
			return nil, err
		}
		return set.Complement(operand), nil

	case *ast.BinaryExpr:
		return b.combine(n, operators[n.Op], n.X, n.Y)

	case *ast.CallExpr:
		return b.call(n)
	}

	return nil, syntaxError(node, "unsupported expression %T", node)
}

func (b builder[T]) call(call *ast.CallExpr) (set.Interface[T], error) {
	name, err := callName(call)
	if err != nil {
		return nil, err
	}

	switch name {
	case "evens":
		return b.intOnly(call, b.evens)
	case "odds":
		return b.intOnly(call, b.odds)
	}

	kind, err := set.StringToKind(name)
	if err != nil {
		return nil, syntaxError(call, "unknown function %s", name)
	}

	switch {
	case kind == set.KindSingleton:
		v, _, err := literal(call.Args[0])
		if err != nil {
			return nil, err
		}
		item, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: column %d: %T in a %s expression", set.ErrTypeMismatch, call.Args[0].Pos(), v, b.domain)
		}
		return set.Singleton(item), nil

	case kind == set.KindFinite:
		items := make([]int, 0, len(call.Args))
		for _, arg := range call.Args {
			v, _, err := literal(arg)
			if err != nil {
				return nil, err
			}
			items = append(items, v.(int))
		}
		return b.intOnly(call, func() set.Interface[T] { return b.ints(items...) })

	case kind == set.KindUniverse:
		return set.Universe[T](), nil

	case kind == set.KindEmpty:
		return set.Empty[T](), nil

	case kind == set.KindComplement:
		operand, err := b.build(call.Args[0])
		if err != nil {
			return nil, err
		}
		return set.Complement(operand), nil

	case kind.Binary():
		return b.combine(call, kind, call.Args[0], call.Args[1])
	}

	return nil, syntaxError(call, "unknown function %s", name)
}

func (b builder[T]) combine(node ast.Node, kind set.Kind, x, y ast.Expr) (set.Interface[T], error) {
	left, err := b.build(x)
	if err != nil {
		return nil, err
	}

	right, err := b.build(y)
	if err != nil {
		return nil, err
	}

	switch kind {
	case set.KindUnion:
		return set.Union(left, right), nil
	case set.KindIntersection:
		return set.Intersection(left, right), nil
	case set.KindDifference:
		return set.Difference(left, right), nil
	case set.KindSymmetricDifference:
		return set.SymmetricDifference(left, right), nil
	}

	return nil, syntaxError(node, "unsupported combinator %s", kind)
}

func (b builder[T]) intOnly(call *ast.CallExpr, fn func() set.Interface[T]) (set.Interface[T], error) {
	if b.ints == nil {
		return nil, fmt.Errorf("%w: column %d: %s is only defined over %s", set.ErrTypeMismatch, call.Pos(), call.Fun, DomainInt)
	}
	return fn(), nil
}
