package fn_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fnkit/fn"
)

func sub(a, b int) int { return a - b }

func TestBindSubstitution(t *testing.T) {
	// Bind-slot order, not call-site order, determines the final
	// argument order.
	b := fn.Bind(sub, fn.P1, 10)
	got, err := fn.Call1[int](b, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, -7))

	b = fn.Bind(sub, 10, fn.P1)
	got, err = fn.Call1[int](b, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 7))
}

func TestBindAllValues(t *testing.T) {
	b := fn.Bind(sub, 10, 4)
	qt.Assert(t, qt.Equals(b.NumArgs(), 0))
	got, err := fn.Call1[int](b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 6))
}

func TestBindRepeatedPlaceholder(t *testing.T) {
	b := fn.Bind(sub, fn.P1, fn.P1)
	got, err := fn.Call1[int](b, 5)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 0))
}

func TestBindReordersCallSiteArguments(t *testing.T) {
	b := fn.Bind(sub, fn.P2, fn.P1)
	qt.Assert(t, qt.Equals(b.NumArgs(), 2))
	got, err := fn.Call1[int](b, 3, 10)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 7))
}

func TestBindSurplusArgumentsIgnored(t *testing.T) {
	b := fn.Bind(sub, fn.P1, 1)
	got, err := fn.Call1[int](b, 5, 99, "ignored")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 4))
}

func TestBindConvertsArguments(t *testing.T) {
	half := func(x float64) float64 { return x / 2 }
	b := fn.Bind(half, fn.P1)
	got, err := fn.Call1[float64](b, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 1.5))
}

func TestBindCallResults(t *testing.T) {
	divmod := func(a, b int) (int, int) { return a / b, a % b }
	b := fn.Bind(divmod, fn.P1, 3)
	q, r, err := fn.Call2[int, int](b, 10)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(q, 3))
	qt.Assert(t, qt.Equals(r, 1))

	out, err := b.Call(10)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(out, []any{3, 1}))
}

func TestBindArgumentTypeError(t *testing.T) {
	b := fn.Bind(sub, fn.P1, 1)
	_, err := b.Call("not an int")
	qt.Assert(t, qt.ErrorMatches(err, `fn\.Bound\.Call: argument 0: .*`))

	_, err = fn.Call1[int](b, "not an int")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestBindPreconditionPanics(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() { fn.Bind(42) },
		`fn\.Bind: target is not a function`))
	qt.Assert(t, qt.PanicMatches(func() { fn.Bind(sub, 1) },
		`fn\.Bind: 1 slots for a 2-parameter function`))
	qt.Assert(t, qt.PanicMatches(func() { fn.Bind(sub, "x", 2) },
		`fn\.Bind: slot 0: .*`))
	qt.Assert(t, qt.PanicMatches(func() { fn.Bind(func(...int) {}) },
		`fn\.Bind: variadic functions are not supported`))

	// Placeholder position exceeding the supplied argument count is
	// a precondition violation, not a recoverable error.
	b := fn.Bind(sub, fn.P1, fn.P2)
	qt.Assert(t, qt.PanicMatches(func() { b.Call(3) },
		`fn\.Bound\.Call: placeholder position 2 exceeds 1 supplied arguments`))
}

func TestBindNilArguments(t *testing.T) {
	isNil := func(p *int) bool { return p == nil }
	b := fn.Bind(isNil, fn.P1)
	got, err := fn.Call1[bool](b, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(got))
}

func TestIsPlaceholder(t *testing.T) {
	qt.Assert(t, qt.Equals(fn.IsPlaceholder(fn.P1), 1))
	qt.Assert(t, qt.Equals(fn.IsPlaceholder(fn.P9), 9))
	qt.Assert(t, qt.Equals(fn.IsPlaceholder(7), 0))
	qt.Assert(t, qt.Equals(fn.IsPlaceholder("P1"), 0))
	qt.Assert(t, qt.Equals(fn.IsPlaceholder(fn.Placeholder(0)), 0))
	qt.Assert(t, qt.Equals(fn.IsPlaceholder(fn.Placeholder(10)), 0))
}

func TestIsBindExpression(t *testing.T) {
	b := fn.Bind(sub, fn.P1, 10)
	qt.Assert(t, qt.IsTrue(fn.IsBindExpression(b)))
	qt.Assert(t, qt.IsFalse(fn.IsBindExpression(sub)))
	qt.Assert(t, qt.IsFalse(fn.IsBindExpression(fn.P1)))

	// A nested bind result bound as a value slot is passed through
	// as an opaque value, not flattened.
	inner := fn.Bind(sub, fn.P1, 1)
	outer := fn.Bind(func(v any) bool { return fn.IsBindExpression(v) }, inner)
	got, err := fn.Call1[bool](outer)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(got))
}

func TestNotBound(t *testing.T) {
	divides := func(d, n int) bool { return n%d == 0 }
	odd := fn.NotBound(fn.Bind(divides, 2, fn.P1))

	got, err := odd(3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(got))

	got, err = odd(4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(got))

	// A non-bool result is an error, not a panic.
	notInt := fn.NotBound(fn.Bind(sub, fn.P1, 1))
	_, err = notInt(5)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestBind1st2nd(t *testing.T) {
	qt.Assert(t, qt.Equals(fn.Bind1st(sub, 10)(3), 7))
	qt.Assert(t, qt.Equals(fn.Bind2nd(sub, 10)(3), -7))
}
