// Package expr compiles set expressions written in Go expression syntax, such
// as `evens() | singleton(3)` or `diff(all(), ints(1, 2))`, into sets.
//
// Every expression has a domain: the type of its elements. Integer literals
// and evens/odds/ints are integers, string literals are strings; all() and
// none() take the domain of the expression around them, defaulting to
// integers. Mixing domains is reported as set.ErrTypeMismatch.
package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"

	"github.com/rdeusser/intension/set"
)

var ErrSyntax = errors.New("syntax error")

type Domain int

const (
	DomainInt Domain = iota
	DomainString
)

func (d Domain) String() string {
	switch d {
	case DomainInt:
		return "int"
	case DomainString:
		return "string"
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// Expr is a compiled set expression. It is immutable and safe for concurrent
// use; the enumerators it returns are not.
type Expr struct {
	src    string
	domain Domain
	set    set.Interface[any]
}

// Compile parses and type checks src.
func Compile(src string) (*Expr, error) {
	root, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	domain, known, err := infer(root)
	if err != nil {
		return nil, err
	}

	if !known {
		domain = DomainInt
	}

	e := &Expr{src: src, domain: domain}

	switch domain {
	case DomainInt:
		s, err := intBuilder.build(root)
		if err != nil {
			return nil, err
		}
		e.set = set.Erase(s)
	case DomainString:
		s, err := stringBuilder.build(root)
		if err != nil {
			return nil, err
		}
		e.set = set.Erase(s)
	}

	return e, nil
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("expr: Compile(%q): %v", src, err))
	}
	return e
}

// Source returns the text the expression was compiled from.
func (e *Expr) Source() string { return e.src }

// Domain returns the type of the elements of the expression.
func (e *Expr) Domain() Domain { return e.domain }

// Set returns the compiled set. Its Domain reports the Go type of its elements.
func (e *Expr) Set() set.Interface[any] { return e.set }

// String returns the canonical form of the expression.
func (e *Expr) String() string { return e.set.String() }

// Has parses item as a literal, e.g. `42` or `"foo"`, and tests it for
// membership. A literal outside the domain of the expression is reported as
// set.ErrTypeMismatch.
func (e *Expr) Has(item string) (bool, error) {
	node, err := parser.ParseExpr(item)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	v, _, err := literal(node)
	if err != nil {
		return false, err
	}

	return set.HasChecked(e.set, v)
}

// Enumerate walks the members of the expression in [lower, upper). Only
// integer expressions can be enumerated, others return
// set.ErrUnsupportedDomain.
func (e *Expr) Enumerate(lower, upper *int, opts ...set.Option) (*set.Enumerator[int], error) {
	return set.EnumerateErased(e.set, lower, upper, opts...)
}

func syntaxError(node ast.Node, format string, args ...any) error {
	return fmt.Errorf("%w: column %d: %s", ErrSyntax, node.Pos(), fmt.Sprintf(format, args...))
}
