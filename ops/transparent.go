package ops

import (
	"cmp"
	"fmt"
	"reflect"
)

// The *Any forms are the transparent counterparts of the typed
// functors: the two operands may have independently chosen numeric
// types and are combined under the usual promotion rules. Integer
// pairs are compared exactly regardless of signedness; as soon as a
// floating-point operand is involved, both operands are taken to
// float64, so LessAny(3, 3.5) is true. Arithmetic results are
// returned as int64, uint64 or float64 according to the promoted
// type. A non-numeric operand where a number is required panics:
// that is caller misuse, the same class of error the typed forms
// reject at compile time.

type numKind uint8

const (
	intNum numKind = iota
	uintNum
	floatNum
)

type num struct {
	k numKind
	i int64
	u uint64
	f float64
}

func toNum(v any) (num, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return num{k: intNum, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return num{k: uintNum, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return num{k: floatNum, f: rv.Float()}, true
	}
	return num{}, false
}

func (n num) float() float64 {
	switch n.k {
	case intNum:
		return float64(n.i)
	case uintNum:
		return float64(n.u)
	}
	return n.f
}

func mustNum(op string, v any) num {
	n, ok := toNum(v)
	if !ok {
		panic(fmt.Sprintf("ops.%s: operand %T is not numeric", op, v))
	}
	return n
}

// compareNum compares exactly for integer pairs, including mixed
// signedness, and via float64 once a floating-point operand is
// involved.
func compareNum(a, b num) int {
	if a.k == floatNum || b.k == floatNum {
		return cmp.Compare(a.float(), b.float())
	}
	switch {
	case a.k == intNum && b.k == intNum:
		return cmp.Compare(a.i, b.i)
	case a.k == uintNum && b.k == uintNum:
		return cmp.Compare(a.u, b.u)
	case a.k == intNum:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

// arith combines two numeric operands under the promoted type and
// returns the result as int64, uint64 or float64.
func arith(op string, a, b any, fi func(int64, int64) int64, fu func(uint64, uint64) uint64, ff func(float64, float64) float64) any {
	x := mustNum(op, a)
	y := mustNum(op, b)
	if x.k == floatNum || y.k == floatNum {
		return ff(x.float(), y.float())
	}
	if x.k == uintNum && y.k == uintNum {
		return fu(x.u, y.u)
	}
	xi, yi := x.i, y.i
	if x.k == uintNum {
		xi = int64(x.u)
	}
	if y.k == uintNum {
		yi = int64(y.u)
	}
	return fi(xi, yi)
}

// PlusAny adds two numbers of possibly different types, or
// concatenates two strings.
func PlusAny(a, b any) any {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as + bs
		}
	}
	return arith("PlusAny", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y uint64) uint64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// MinusAny subtracts two numbers of possibly different types.
func MinusAny(a, b any) any {
	return arith("MinusAny", a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y uint64) uint64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// MultipliesAny multiplies two numbers of possibly different types.
func MultipliesAny(a, b any) any {
	return arith("MultipliesAny", a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y uint64) uint64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// DividesAny divides two numbers of possibly different types.
// Integer division by zero panics, as the operator does.
func DividesAny(a, b any) any {
	return arith("DividesAny", a, b,
		func(x, y int64) int64 { return x / y },
		func(x, y uint64) uint64 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// ModulusAny takes the remainder of two integers of possibly
// different types. Floating-point operands panic.
func ModulusAny(a, b any) any {
	x := mustNum("ModulusAny", a)
	y := mustNum("ModulusAny", b)
	if x.k == floatNum || y.k == floatNum {
		panic("ops.ModulusAny: floating-point operand")
	}
	if x.k == uintNum && y.k == uintNum {
		return x.u % y.u
	}
	xi, yi := x.i, y.i
	if x.k == uintNum {
		xi = int64(x.u)
	}
	if y.k == uintNum {
		yi = int64(y.u)
	}
	return xi % yi
}

// NegateAny negates a number, returning int64 or float64.
func NegateAny(a any) any {
	n := mustNum("NegateAny", a)
	switch n.k {
	case floatNum:
		return -n.f
	case uintNum:
		return -int64(n.u)
	}
	return -n.i
}

// EqualAny reports whether two values are equal, comparing numbers
// of different types by value and anything else by interface
// equality.
func EqualAny(a, b any) bool {
	x, okx := toNum(a)
	y, oky := toNum(b)
	if okx && oky {
		return compareNum(x, y) == 0
	}
	return a == b
}

// NotEqualAny is the negation of EqualAny.
func NotEqualAny(a, b any) bool {
	return !EqualAny(a, b)
}

// LessAny reports whether a orders before b. Numbers of different
// types are compared by value; two strings are compared
// lexicographically; anything else panics.
func LessAny(a, b any) bool {
	return orderAny("LessAny", a, b) < 0
}

// GreaterAny reports whether a orders after b. See LessAny.
func GreaterAny(a, b any) bool {
	return orderAny("GreaterAny", a, b) > 0
}

// LessEqualAny reports whether a does not order after b. See LessAny.
func LessEqualAny(a, b any) bool {
	return orderAny("LessEqualAny", a, b) <= 0
}

// GreaterEqualAny reports whether a does not order before b. See LessAny.
func GreaterEqualAny(a, b any) bool {
	return orderAny("GreaterEqualAny", a, b) >= 0
}

func orderAny(op string, a, b any) int {
	x, okx := toNum(a)
	y, oky := toNum(b)
	if okx && oky {
		return compareNum(x, y)
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs)
		}
	}
	panic(fmt.Sprintf("ops.%s: %T and %T are not ordered", op, a, b))
}

// BitAndAny combines two integers of possibly different types,
// returning uint64 for an unsigned pair and int64 otherwise.
func BitAndAny(a, b any) any {
	return bitAny("BitAndAny", a, b,
		func(x, y int64) int64 { return x & y },
		func(x, y uint64) uint64 { return x & y })
}

// BitOrAny combines two integers of possibly different types.
func BitOrAny(a, b any) any {
	return bitAny("BitOrAny", a, b,
		func(x, y int64) int64 { return x | y },
		func(x, y uint64) uint64 { return x | y })
}

// BitXorAny combines two integers of possibly different types.
func BitXorAny(a, b any) any {
	return bitAny("BitXorAny", a, b,
		func(x, y int64) int64 { return x ^ y },
		func(x, y uint64) uint64 { return x ^ y })
}

func bitAny(op string, a, b any, fi func(int64, int64) int64, fu func(uint64, uint64) uint64) any {
	x := mustNum(op, a)
	y := mustNum(op, b)
	if x.k == floatNum || y.k == floatNum {
		panic(fmt.Sprintf("ops.%s: floating-point operand", op))
	}
	if x.k == uintNum && y.k == uintNum {
		return fu(x.u, y.u)
	}
	xi, yi := x.i, y.i
	if x.k == uintNum {
		xi = int64(x.u)
	}
	if y.k == uintNum {
		yi = int64(y.u)
	}
	return fi(xi, yi)
}
