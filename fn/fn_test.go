package fn_test

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fnkit/fn"
)

func TestComp(t *testing.T) {
	double := func(a int) int { return a * 2 }
	str := strconv.Itoa
	qt.Assert(t, qt.Equals(fn.Comp(double, str)(21), "42"))

	// Iden is the identity of Comp on both sides.
	qt.Assert(t, qt.Equals(fn.Comp(fn.Iden[int], double)(3), 6))
	qt.Assert(t, qt.Equals(fn.Comp(double, fn.Iden[int])(3), 6))
}

func TestConst(t *testing.T) {
	always := fn.Const[string](42)
	qt.Assert(t, qt.Equals(always("anything"), 42))
	qt.Assert(t, qt.Equals(always(""), 42))
}

func TestCurry(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	curried := fn.Curry2(sub)
	qt.Assert(t, qt.Equals(curried(10)(3), 7))
	qt.Assert(t, qt.Equals(fn.Uncurry2(curried)(10, 3), 7))
}

func TestSwapValues(t *testing.T) {
	a, b := 1, 2
	fn.Swap(&a, &b)
	qt.Assert(t, qt.Equals(a, 2))
	qt.Assert(t, qt.Equals(b, 1))
}

func TestNot(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	notEven := fn.Not1(isEven)
	qt.Assert(t, qt.IsFalse(notEven(4)))
	qt.Assert(t, qt.IsTrue(notEven(3)))

	qt.Assert(t, qt.IsFalse(fn.Not(func() bool { return true })()))

	bothPos := func(a, b int) bool { return a > 0 && b > 0 }
	qt.Assert(t, qt.IsTrue(fn.Not2(bothPos)(1, -1)))
	qt.Assert(t, qt.IsFalse(fn.Not2(bothPos)(1, 1)))
}
