package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fnkit/tuple"
)

func TestRoundTrip(t *testing.T) {
	tp := tuple.New3(1, "a", 2.5)
	qt.Assert(t, qt.Equals(tp.A, 1))
	qt.Assert(t, qt.Equals(tp.B, "a"))
	qt.Assert(t, qt.Equals(tp.C, 2.5))

	tp.B = "b"
	qt.Assert(t, qt.Equals(tp.B, "b"))

	a, b, c := tp.Unpack()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "b"))
	qt.Assert(t, qt.Equals(c, 2.5))
}

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.T0{}.Len(), 0))
	qt.Assert(t, qt.Equals(tuple.New1("x").Len(), 1))
	qt.Assert(t, qt.Equals(tuple.New2(1, 2).Len(), 2))
	qt.Assert(t, qt.Equals(tuple.New5(1, 2, 3, 4, 5).Len(), 5))
	qt.Assert(t, qt.Equals(tuple.New9(1, 2, 3, 4, 5, 6, 7, 8, 9).Len(), 9))
}

func TestPair(t *testing.T) {
	p := tuple.MakePair("k", 42)
	qt.Assert(t, qt.Equals(p.A, "k"))
	qt.Assert(t, qt.Equals(p.B, 42))

	// Pair is the same type as T2.
	var tp tuple.T2[string, int] = p
	qt.Assert(t, qt.Equals(tp, tuple.New2("k", 42)))
}

func TestOrderingIsLexicographic(t *testing.T) {
	qt.Assert(t, qt.IsTrue(tuple.Less2(tuple.New2(1, 2), tuple.New2(1, 3))))
	qt.Assert(t, qt.IsFalse(tuple.Less2(tuple.New2(1, 2), tuple.New2(1, 2))))
	qt.Assert(t, qt.IsTrue(tuple.New2(1, 2) == tuple.New2(1, 2)))
	qt.Assert(t, qt.IsTrue(tuple.Equal2(tuple.New2(1, 2), tuple.New2(1, 2))))

	// The first slot dominates.
	qt.Assert(t, qt.IsTrue(tuple.Less2(tuple.New2(0, 9), tuple.New2(1, 0))))
	qt.Assert(t, qt.IsFalse(tuple.Less2(tuple.New2(2, 0), tuple.New2(1, 9))))

	qt.Assert(t, qt.Equals(tuple.Compare3(tuple.New3(1, "a", 2.0), tuple.New3(1, "a", 3.0)), -1))
	qt.Assert(t, qt.Equals(tuple.Compare3(tuple.New3(1, "b", 2.0), tuple.New3(1, "a", 3.0)), 1))
	qt.Assert(t, qt.Equals(tuple.Compare3(tuple.New3(1, "a", 2.0), tuple.New3(1, "a", 2.0)), 0))
}

func TestEmptyTupleBaseCase(t *testing.T) {
	x, y := tuple.T0{}, tuple.T0{}
	qt.Assert(t, qt.IsTrue(x == y))
	qt.Assert(t, qt.Equals(tuple.Compare0(x, y), 0))
	qt.Assert(t, qt.IsFalse(tuple.Less0(x, y)))
}

func TestCompareFunc(t *testing.T) {
	// Slot types that are not ordered themselves.
	type id struct{ n int }
	byN := func(a, b id) int { return a.n - b.n }
	byLen := func(a, b []int) int { return len(a) - len(b) }

	x := tuple.New2(id{1}, []int{1, 2})
	y := tuple.New2(id{1}, []int{1, 2, 3})
	qt.Assert(t, qt.IsTrue(tuple.CompareFunc2(x, y, byN, byLen) < 0))
	qt.Assert(t, qt.IsTrue(tuple.CompareFunc2(y, x, byN, byLen) > 0))
	qt.Assert(t, qt.Equals(tuple.CompareFunc2(x, x, byN, byLen), 0))
}

func TestConcat(t *testing.T) {
	got := tuple.Concat2x1(tuple.New2(1, "a"), tuple.New1(2.0))
	qt.Assert(t, qt.Equals(got, tuple.New3(1, "a", 2.0)))
	qt.Assert(t, qt.Equals(got.Len(), 3))
	qt.Assert(t, qt.Equals(got.C, 2.0))

	// The empty tuple is the identity on either side.
	qt.Assert(t, qt.Equals(tuple.Concat0x2(tuple.T0{}, tuple.New2(1, 2)), tuple.New2(1, 2)))
	qt.Assert(t, qt.Equals(tuple.Concat2x0(tuple.New2(1, 2), tuple.T0{}), tuple.New2(1, 2)))

	// N-ary concatenation by repeated pairwise application.
	abc := tuple.Concat2x1(tuple.Concat1x1(tuple.New1("a"), tuple.New1("b")), tuple.New1("c"))
	qt.Assert(t, qt.Equals(abc, tuple.New3("a", "b", "c")))

	wide := tuple.Concat4x5(tuple.New4(1, 2, 3, 4), tuple.New5(5, 6, 7, 8, 9))
	qt.Assert(t, qt.Equals(wide, tuple.New9(1, 2, 3, 4, 5, 6, 7, 8, 9)))
}

func TestConcatAllWidths(t *testing.T) {
	nine := tuple.New9(1, 2, 3, 4, 5, 6, 7, 8, 9)

	// The empty-tuple identity holds at the widest arity too.
	qt.Assert(t, qt.Equals(tuple.Concat0x9(tuple.T0{}, nine), nine))
	qt.Assert(t, qt.Equals(tuple.Concat9x0(nine, tuple.T0{}), nine))
	qt.Assert(t, qt.Equals(tuple.Concat0x6(tuple.T0{}, tuple.New6(1, 2, 3, 4, 5, 6)), tuple.New6(1, 2, 3, 4, 5, 6)))
	qt.Assert(t, qt.Equals(tuple.Concat7x0(tuple.New7(1, 2, 3, 4, 5, 6, 7), tuple.T0{}), tuple.New7(1, 2, 3, 4, 5, 6, 7)))

	// Every split of a 9-tuple concatenates back to the same value.
	qt.Assert(t, qt.Equals(tuple.Concat1x8(tuple.New1(1), tuple.New8(2, 3, 4, 5, 6, 7, 8, 9)), nine))
	qt.Assert(t, qt.Equals(tuple.Concat2x7(tuple.New2(1, 2), tuple.New7(3, 4, 5, 6, 7, 8, 9)), nine))
	qt.Assert(t, qt.Equals(tuple.Concat3x6(tuple.New3(1, 2, 3), tuple.New6(4, 5, 6, 7, 8, 9)), nine))
	qt.Assert(t, qt.Equals(tuple.Concat6x3(tuple.New6(1, 2, 3, 4, 5, 6), tuple.New3(7, 8, 9)), nine))
	qt.Assert(t, qt.Equals(tuple.Concat8x1(tuple.New8(1, 2, 3, 4, 5, 6, 7, 8), tuple.New1(9)), nine))

	qt.Assert(t, qt.Equals(
		tuple.Concat3x5(tuple.New3(1, 2, 3), tuple.New5(4, 5, 6, 7, 8)),
		tuple.New8(1, 2, 3, 4, 5, 6, 7, 8)))
	qt.Assert(t, qt.Equals(
		tuple.Concat2x6(tuple.New2("a", "b"), tuple.New6("c", "d", "e", "f", "g", "h")),
		tuple.New8("a", "b", "c", "d", "e", "f", "g", "h")))
	qt.Assert(t, qt.Equals(
		tuple.Concat1x6(tuple.New1(0), tuple.New6(1, 2, 3, 4, 5, 6)),
		tuple.New7(0, 1, 2, 3, 4, 5, 6)))
}

func TestOrderingWideArities(t *testing.T) {
	x := tuple.New9(1, 2, 3, 4, 5, 6, 7, 8, 9)
	y := x
	y.I = 10

	// Only the last slot differs, so it decides the order.
	qt.Assert(t, qt.Equals(tuple.Compare9(x, y), -1))
	qt.Assert(t, qt.Equals(tuple.Compare9(y, x), 1))
	qt.Assert(t, qt.Equals(tuple.Compare9(x, x), 0))
	qt.Assert(t, qt.IsTrue(tuple.Less9(x, y)))
	qt.Assert(t, qt.IsFalse(tuple.Less9(x, x)))

	qt.Assert(t, qt.IsTrue(tuple.Equal9(x, x)))
	qt.Assert(t, qt.IsFalse(tuple.Equal9(x, y)))
	qt.Assert(t, qt.IsTrue(tuple.Equal1(tuple.New1("x"), tuple.New1("x"))))
	qt.Assert(t, qt.IsTrue(tuple.Equal0(tuple.T0{}, tuple.T0{})))

	// The first slot still dominates at width.
	qt.Assert(t, qt.IsTrue(tuple.Less7(
		tuple.New7(0, 9, 9, 9, 9, 9, 9),
		tuple.New7(1, 0, 0, 0, 0, 0, 0))))
	qt.Assert(t, qt.Equals(tuple.Compare6(
		tuple.New6("a", "b", "c", "d", "e", "f"),
		tuple.New6("a", "b", "c", "d", "e", "g")), -1))
	qt.Assert(t, qt.Equals(tuple.Compare8(
		tuple.New8(1, 2, 3, 4, 5, 6, 7, 8),
		tuple.New8(1, 2, 3, 4, 5, 6, 7, 8)), 0))
}

func TestTie(t *testing.T) {
	a, b := 1, "x"
	view := tuple.Tie2(&a, &b)

	// The view is write-through in both directions.
	a = 2
	qt.Assert(t, qt.Equals(tuple.Deref2(view), tuple.New2(2, "x")))

	tuple.Assign2(view, tuple.New2(7, "y"))
	qt.Assert(t, qt.Equals(a, 7))
	qt.Assert(t, qt.Equals(b, "y"))
}
