package ops_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fnkit/ops"
)

func TestArithmetic(t *testing.T) {
	qt.Assert(t, qt.Equals(ops.Plus(2, 3), 5))
	qt.Assert(t, qt.Equals(ops.Plus(2.5, 0.5), 3.0))
	qt.Assert(t, qt.Equals(ops.Plus("foo", "bar"), "foobar"))
	qt.Assert(t, qt.Equals(ops.Minus(2, 3), -1))
	qt.Assert(t, qt.Equals(ops.Multiplies(4, 3), 12))
	qt.Assert(t, qt.Equals(ops.Divides(7, 2), 3))
	qt.Assert(t, qt.Equals(ops.Divides(7.0, 2.0), 3.5))
	qt.Assert(t, qt.Equals(ops.Modulus(7, 3), 1))
	qt.Assert(t, qt.Equals(ops.Negate(5), -5))
	qt.Assert(t, qt.Equals(ops.Negate(uint8(1)), uint8(255)))
}

func TestComparison(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ops.EqualTo(3, 3)))
	qt.Assert(t, qt.IsFalse(ops.EqualTo("a", "b")))
	qt.Assert(t, qt.IsTrue(ops.NotEqualTo(3, 4)))
	qt.Assert(t, qt.IsTrue(ops.Less(3, 4)))
	qt.Assert(t, qt.IsFalse(ops.Less(4, 4)))
	qt.Assert(t, qt.IsTrue(ops.Greater("b", "a")))
	qt.Assert(t, qt.IsTrue(ops.LessEqual(4, 4)))
	qt.Assert(t, qt.IsTrue(ops.GreaterEqual(4, 4)))
	qt.Assert(t, qt.IsFalse(ops.GreaterEqual(3, 4)))
}

func TestLogical(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ops.LogicalAnd(true, true)))
	qt.Assert(t, qt.IsFalse(ops.LogicalAnd(true, false)))
	qt.Assert(t, qt.IsTrue(ops.LogicalOr(false, true)))
	qt.Assert(t, qt.IsFalse(ops.LogicalOr(false, false)))
	qt.Assert(t, qt.IsTrue(ops.LogicalNot(false)))
}

func TestBitwise(t *testing.T) {
	qt.Assert(t, qt.Equals(ops.BitAnd(6, 3), 2))
	qt.Assert(t, qt.Equals(ops.BitOr(6, 3), 7))
	qt.Assert(t, qt.Equals(ops.BitXor(6, 3), 5))
	qt.Assert(t, qt.Equals(ops.BitNot(uint8(0)), uint8(255)))
}

func TestIdentity(t *testing.T) {
	qt.Assert(t, qt.Equals(ops.Identity(42), 42))
	qt.Assert(t, qt.Equals(ops.Identity("x"), "x"))
}

func TestOpsAsValues(t *testing.T) {
	// The functors are ordinary function values, usable wherever a
	// first-class operation is wanted.
	fold := func(f func(int, int) int, init int, xs ...int) int {
		acc := init
		for _, x := range xs {
			acc = f(acc, x)
		}
		return acc
	}
	qt.Assert(t, qt.Equals(fold(ops.Plus[int], 0, 1, 2, 3, 4), 10))
	qt.Assert(t, qt.Equals(fold(ops.Multiplies[int], 1, 1, 2, 3, 4), 24))
}
