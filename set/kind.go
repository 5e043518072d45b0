package set

//go:generate go run github.com/rdeusser/intension/tools/gen-enum -type Kind

// Kind identifies the variant behind an Interface. The names double as the
// function names of the expression language in package expr.
type Kind int

const (
	KindSingleton           Kind = iota // name=singleton
	KindParity                          // name=parity
	KindCustom                          // name=func
	KindFinite                          // name=ints
	KindUniverse                        // name=all
	KindEmpty                           // name=none
	KindUnion                           // name=union
	KindIntersection                    // name=intersection
	KindDifference                      // name=diff
	KindSymmetricDifference             // name=symdiff
	KindComplement                      // name=complement
)

// Binary reports whether k combines two operand sets.
func (k Kind) Binary() bool {
	switch k {
	case KindUnion, KindIntersection, KindDifference, KindSymmetricDifference:
		return true
	}
	return false
}
