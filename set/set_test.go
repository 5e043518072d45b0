package set

import (
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestSingleton(t *testing.T) {
	s := Singleton(1)
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.False(t, s.Has(-1))
	assert.Equal(t, KindSingleton, s.Kind())
}

func TestParity(t *testing.T) {
	testCases := []struct {
		testName string
		n        int
		even     bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"two", 2, true},
		{"negative one", -1, false},
		{"negative two", -2, true},
		{"negative three", -3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.even, Evens[int]().Has(tc.n))
			assert.Equal(t, !tc.even, Odds[int]().Has(tc.n))
		})
	}
}

func TestFunc(t *testing.T) {
	s := Func("short", func(v string) bool { return len(v) < 4 })
	assert.True(t, s.Has("foo"))
	assert.False(t, s.Has("quux"))
	assert.Equal(t, KindCustom, s.Kind())

	assert.Panics(t, func() { Func[int]("nil", nil) })
}

func TestInts(t *testing.T) {
	items := []int{3, 1, 2}
	s := Ints(items...)
	items[0] = 42

	assert.True(t, s.Has(3))
	assert.False(t, s.Has(42))
	assert.False(t, s.Has(4))
	assert.Equal(t, "ints(1, 2, 3)", s.String())
}

func TestUniverseEmpty(t *testing.T) {
	assert.True(t, Universe[string]().Has("foo"))
	assert.False(t, Empty[string]().Has("foo"))
}

func TestUnion(t *testing.T) {
	s := Union(Singleton(1), Singleton(2))
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(3))
}

func TestIntersection(t *testing.T) {
	s := Intersection(Evens[int](), Ints(1, 2, 3, 4))
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(4))
	assert.False(t, s.Has(3))
	assert.False(t, s.Has(6))
}

func TestDifference(t *testing.T) {
	s := Difference(Ints(1, 2, 3, 4), Evens[int]())
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(2))
	assert.False(t, s.Has(5))
}

func TestSymmetricDifference(t *testing.T) {
	s := SymmetricDifference(Ints(1, 2, 3), Ints(2, 3, 4))
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(4))
	assert.False(t, s.Has(2))
	assert.False(t, s.Has(3))
}

func TestComplement(t *testing.T) {
	s := Complement(Evens[int]())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.Equal(t, KindComplement, s.Kind())
}

func TestCombinatorsAreLazy(t *testing.T) {
	var calls int

	counting := Func("counting", func(int) bool {
		calls++
		return true
	})

	s := Union(Intersection(counting, Evens[int]()), Difference(Odds[int](), counting))
	assert.Equal(t, 0, calls)

	s.Has(2)
	s.Has(2)
	assert.Equal(t, 2, calls)
}

func TestNilOperand(t *testing.T) {
	assert.Panics(t, func() { Union(Evens[int](), nil) })
	assert.Panics(t, func() { Intersection(nil, Evens[int]()) })
	assert.Panics(t, func() { Complement[int](nil) })
}

func TestAlgebra(t *testing.T) {
	var (
		a = Union(Ints(-7, 0, 5, 11), Func("multiple of three", func(n int) bool { return n%3 == 0 }))
		b = Difference(Evens[int](), Singleton(4))
		f = gofuzz.New()
	)

	corpus := []int{-7, -2, -1, 0, 1, 2, 3, 4, 5, 6, 11, 12}

	for i := 0; i < 1000; i++ {
		var n int

		f.Fuzz(&n)
		corpus = append(corpus, n, n%100)
	}

	for _, n := range corpus {
		assert.Equal(t, a.Has(n) || b.Has(n), Union(a, b).Has(n), "union(%d)", n)
		assert.Equal(t, a.Has(n) && b.Has(n), Intersection(a, b).Has(n), "intersection(%d)", n)
		assert.Equal(t, a.Has(n) && !b.Has(n), Difference(a, b).Has(n), "diff(%d)", n)
		assert.Equal(t, a.Has(n) != b.Has(n), SymmetricDifference(a, b).Has(n), "symdiff(%d)", n)
		assert.Equal(t, !a.Has(n), Complement(a).Has(n), "complement(%d)", n)
		assert.False(t, Intersection(Evens[int](), Odds[int]()).Has(n), "evens & odds (%d)", n)
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		testName string
		s        Interface[int]
		want     string
	}{
		{
			"singleton",
			Singleton(-3),
			"singleton(-3)",
		},
		{
			"nested",
			Union(Intersection(Evens[int](), Ints(2, 1)), Difference(Odds[int](), Singleton(3))),
			"union(intersection(evens(), ints(1, 2)), diff(odds(), singleton(3)))",
		},
		{
			"symmetric difference and complement",
			Complement(SymmetricDifference(Universe[int](), Empty[int]())),
			"complement(symdiff(all(), none()))",
		},
		{
			"custom",
			Func("prime", func(int) bool { return false }),
			`func("prime")`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.String())
		})
	}

	assert.Equal(t, `singleton("foo")`, Singleton("foo").String())
}

func TestKind(t *testing.T) {
	for _, k := range KindList() {
		got, err := StringToKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := StringToKind("evens")
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.False(t, IsKind("evens"))
	assert.True(t, KindUnion.Binary())
	assert.False(t, KindComplement.Binary())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
