// Package ops provides stateless operation functions over the
// built-in operators, for use as first-class values with the fn and
// tuple packages: arithmetic, comparison, logical and bitwise forms,
// each a direct wrapper with no additional numeric policy.
//
// The typed forms constrain both operands to one type. The *Any
// forms (see transparent.go) accept two independently typed numeric
// operands and apply the usual promotion rules instead.
package ops

import "cmp"

// Signed permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number permits any integer or floating-point type.
type Number interface {
	Integer | Float
}

// Summable permits any type the + operator applies to.
type Summable interface {
	Number | ~string
}

// Plus returns a + b.
func Plus[T Summable](a, b T) T { return a + b }

// Minus returns a - b.
func Minus[T Number](a, b T) T { return a - b }

// Multiplies returns a * b.
func Multiplies[T Number](a, b T) T { return a * b }

// Divides returns a / b. Integer division by zero panics, as the
// operator does.
func Divides[T Number](a, b T) T { return a / b }

// Modulus returns a % b. Division by zero panics, as the operator does.
func Modulus[T Integer](a, b T) T { return a % b }

// Negate returns -a. For unsigned types the result wraps, as the
// operator does.
func Negate[T Number](a T) T { return -a }

// EqualTo reports whether a == b.
func EqualTo[T comparable](a, b T) bool { return a == b }

// NotEqualTo reports whether a != b.
func NotEqualTo[T comparable](a, b T) bool { return a != b }

// Less reports whether a < b.
func Less[T cmp.Ordered](a, b T) bool { return a < b }

// Greater reports whether a > b.
func Greater[T cmp.Ordered](a, b T) bool { return a > b }

// LessEqual reports whether a <= b.
func LessEqual[T cmp.Ordered](a, b T) bool { return a <= b }

// GreaterEqual reports whether a >= b.
func GreaterEqual[T cmp.Ordered](a, b T) bool { return a >= b }

// LogicalAnd returns a && b.
func LogicalAnd(a, b bool) bool { return a && b }

// LogicalOr returns a || b.
func LogicalOr(a, b bool) bool { return a || b }

// LogicalNot returns !a.
func LogicalNot(a bool) bool { return !a }

// BitAnd returns a & b.
func BitAnd[T Integer](a, b T) T { return a & b }

// BitOr returns a | b.
func BitOr[T Integer](a, b T) T { return a | b }

// BitXor returns a ^ b.
func BitXor[T Integer](a, b T) T { return a ^ b }

// BitNot returns the bitwise complement of a.
func BitNot[T Integer](a T) T { return ^a }

// Identity returns its argument unchanged.
func Identity[T any](a T) T { return a }
