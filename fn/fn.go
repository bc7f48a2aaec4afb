package fn

// Comp is left to right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument. It is the left and right identity of Comp.
func Iden[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always
// returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Curry2 converts a two-argument function into a function that takes
// the first argument and returns a function taking the second.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Swap exchanges the values pointed to by a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}
