package set

import (
	"fmt"
	"iter"

	"github.com/scylladb/go-set/iset"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

type options struct {
	logger *zap.Logger
}

// Option configures an Enumerator.
type Option func(*options)

// WithLogger traces every step of the scan at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Enumerator walks the members of a set that lie in [lower, upper) in
// ascending order. It holds the cursor of a single traversal: it cannot be
// restarted and must not be shared between goroutines. Abandoning an
// Enumerator part way through is always safe.
type Enumerator[T constraints.Integer] struct {
	set    Interface[T]
	cursor T
	upper  T
	done   bool
	logger *zap.Logger
}

// Enumerate returns an Enumerator over the members of s with
// lower <= n < upper. The upper bound is never yielded, even when it is a
// member of s. Both bounds are required; a nil bound is reported as
// ErrInvalidArgument before anything is enumerated.
func Enumerate[T constraints.Integer](s Interface[T], lower, upper *T, opts ...Option) (*Enumerator[T], error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil set", ErrInvalidArgument)
	}

	if lower == nil {
		return nil, fmt.Errorf("%w: must give a valid lower bound", ErrInvalidArgument)
	}

	if upper == nil {
		return nil, fmt.Errorf("%w: must give a valid upper bound", ErrInvalidArgument)
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Enumerator[T]{
		set:    s,
		cursor: *lower,
		upper:  *upper,
		logger: o.logger.With(zap.Stringer("set", s)),
	}, nil
}

// Next returns the next member of the set and true, or the zero value and
// false once the window is exhausted.
func (e *Enumerator[T]) Next() (T, bool) {
	for !e.done {
		n := e.cursor
		if n >= e.upper {
			e.done = true
			if ce := e.logger.Check(zap.DebugLevel, "exhausted"); ce != nil {
				ce.Write(zap.Any("upper", e.upper))
			}
			break
		}

		// n < upper, so n+1 cannot overflow.
		e.cursor = n + 1

		if e.set.Has(n) {
			if ce := e.logger.Check(zap.DebugLevel, "yield"); ce != nil {
				ce.Write(zap.Any("n", n))
			}
			return n, true
		}

		if ce := e.logger.Check(zap.DebugLevel, "skip"); ce != nil {
			ce.Write(zap.Any("n", n))
		}
	}

	var zero T
	return zero, false
}

// All returns an iterator over the remaining members. Ranging over it
// consumes the Enumerator; a second range picks up where the first stopped.
func (e *Enumerator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			n, ok := e.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Collect drains the remaining members into a slice.
func (e *Enumerator[T]) Collect() []T {
	var items []T
	for n := range e.All() {
		items = append(items, n)
	}
	return items
}

// Materialize enumerates the members of s in [lower, upper) into a concrete
// set.
func Materialize(s Interface[int], lower, upper int, opts ...Option) (*iset.Set, error) {
	e, err := Enumerate(s, &lower, &upper, opts...)
	if err != nil {
		return nil, err
	}

	items := iset.New()
	for n := range e.All() {
		items.Add(n)
	}

	return items, nil
}
