package expr

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"github.com/rdeusser/intension/set"
)

var operators = map[token.Token]set.Kind{
	token.OR:      set.KindUnion,
	token.AND:     set.KindIntersection,
	token.SUB:     set.KindDifference,
	token.AND_NOT: set.KindDifference,
	token.XOR:     set.KindSymmetricDifference,
}

// infer returns the domain of node. known is false when nothing in node
// pins the domain down, as in `all() | none()`.
func infer(node ast.Expr) (domain Domain, known bool, err error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return infer(n.X)

	case *ast.UnaryExpr:
		if n.Op != token.XOR {
			return 0, false, syntaxError(n, "expected a set, got %s", n.Op)
		}
		return infer(n.X)

	case *ast.BinaryExpr:
		if _, ok := operators[n.Op]; !ok {
			return 0, false, syntaxError(n, "unsupported operator %s", n.Op)
		}
		return unify(n.X, n.Y)

	case *ast.CallExpr:
		return inferCall(n)

	case *ast.BasicLit:
		return 0, false, syntaxError(n, "expected a set, got literal %s", n.Value)
	}

	return 0, false, syntaxError(node, "unsupported expression %T", node)
}

func inferCall(call *ast.CallExpr) (Domain, bool, error) {
	name, err := callName(call)
	if err != nil {
		return 0, false, err
	}

	if name == "evens" || name == "odds" {
		return DomainInt, true, arity(call, name, 0)
	}

	kind, err := set.StringToKind(name)
	if err != nil {
		return 0, false, syntaxError(call, "unknown function %s", name)
	}

	switch {
	case kind == set.KindSingleton:
		if err := arity(call, name, 1); err != nil {
			return 0, false, err
		}
		_, domain, err := literal(call.Args[0])
		return domain, err == nil, err

	case kind == set.KindFinite:
		for _, arg := range call.Args {
			_, domain, err := literal(arg)
			if err != nil {
				return 0, false, err
			}
			if domain != DomainInt {
				return 0, false, fmt.Errorf("%w: column %d: %s takes %s literals, got %s", set.ErrTypeMismatch, arg.Pos(), name, DomainInt, domain)
			}
		}
		return DomainInt, true, nil

	case kind == set.KindUniverse, kind == set.KindEmpty:
		return 0, false, arity(call, name, 0)

	case kind == set.KindComplement:
		if err := arity(call, name, 1); err != nil {
			return 0, false, err
		}
		return infer(call.Args[0])

	case kind.Binary():
		if err := arity(call, name, 2); err != nil {
			return 0, false, err
		}
		return unify(call.Args[0], call.Args[1])
	}

	return 0, false, syntaxError(call, "unknown function %s", name)
}

func unify(x, y ast.Expr) (Domain, bool, error) {
	dx, kx, err := infer(x)
	if err != nil {
		return 0, false, err
	}

	dy, ky, err := infer(y)
	if err != nil {
		return 0, false, err
	}

	switch {
	case kx && ky && dx != dy:
		return 0, false, fmt.Errorf("%w: column %d: cannot combine %s and %s sets", set.ErrTypeMismatch, x.Pos(), dx, dy)
	case kx:
		return dx, true, nil
	case ky:
		return dy, true, nil
	}

	return 0, false, nil
}

func callName(call *ast.CallExpr) (string, error) {
	ident, ok := call.Fun.(*ast.Ident)
	if !ok {
		return "", syntaxError(call, "unsupported call")
	}

	if call.Ellipsis.IsValid() {
		return "", syntaxError(call, "unsupported variadic call to %s", ident.Name)
	}

	return ident.Name, nil
}

func arity(call *ast.CallExpr, name string, want int) error {
	if len(call.Args) != want {
		return syntaxError(call, "%s takes %d argument(s), got %d", name, want, len(call.Args))
	}
	return nil
}

// literal evaluates an integer or string literal. Integers may carry a sign.
func literal(node ast.Expr) (any, Domain, error) {
	sign := ""

	if u, ok := node.(*ast.UnaryExpr); ok && (u.Op == token.SUB || u.Op == token.ADD) {
		if u.Op == token.SUB {
			sign = "-"
		}
		node = u.X
	}

	lit, ok := node.(*ast.BasicLit)
	if !ok {
		return nil, 0, syntaxError(node, "expected a literal")
	}

	switch lit.Kind {
	case token.INT:
		n, err := strconv.ParseInt(sign+lit.Value, 0, strconv.IntSize)
		if err != nil {
			return nil, 0, syntaxError(lit, "%v", err)
		}
		return int(n), DomainInt, nil

	case token.STRING:
		if sign != "" {
			return nil, 0, syntaxError(lit, "cannot negate string %s", lit.Value)
		}
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, 0, syntaxError(lit, "%v", err)
		}
		return s, DomainString, nil
	}

	return nil, 0, syntaxError(lit, "unsupported literal %s", lit.Value)
}
