package tuple

// Apply invokes a function with a tuple's slots as its arguments, in
// slot order. Constructing a value from a tuple is the same operation
// with a constructor function as the callable.

// Apply0 invokes f with no arguments.
func Apply0[R any](f func() R, t T0) R {
	return f()
}

// Apply1 invokes f with the tuple's slot as its argument.
func Apply1[A, R any](f func(A) R, t T1[A]) R {
	return f(t.A)
}

// Apply2 invokes f with the tuple's slots as its arguments.
func Apply2[A, B, R any](f func(A, B) R, t T2[A, B]) R {
	return f(t.A, t.B)
}

// Apply3 invokes f with the tuple's slots as its arguments.
func Apply3[A, B, C, R any](f func(A, B, C) R, t T3[A, B, C]) R {
	return f(t.A, t.B, t.C)
}

// Apply4 invokes f with the tuple's slots as its arguments.
func Apply4[A, B, C, D, R any](f func(A, B, C, D) R, t T4[A, B, C, D]) R {
	return f(t.A, t.B, t.C, t.D)
}

// Apply5 invokes f with the tuple's slots as its arguments.
func Apply5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, t T5[A, B, C, D, E]) R {
	return f(t.A, t.B, t.C, t.D, t.E)
}

// Apply6 invokes f with the tuple's slots as its arguments.
func Apply6[A, B, C, D, E, F, R any](f func(A, B, C, D, E, F) R, t T6[A, B, C, D, E, F]) R {
	return f(t.A, t.B, t.C, t.D, t.E, t.F)
}

// Apply7 invokes f with the tuple's slots as its arguments.
func Apply7[A, B, C, D, E, F, G, R any](f func(A, B, C, D, E, F, G) R, t T7[A, B, C, D, E, F, G]) R {
	return f(t.A, t.B, t.C, t.D, t.E, t.F, t.G)
}

// Apply8 invokes f with the tuple's slots as its arguments.
func Apply8[A, B, C, D, E, F, G, H, R any](f func(A, B, C, D, E, F, G, H) R, t T8[A, B, C, D, E, F, G, H]) R {
	return f(t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H)
}

// Apply9 invokes f with the tuple's slots as its arguments.
func Apply9[A, B, C, D, E, F, G, H, I, R any](f func(A, B, C, D, E, F, G, H, I) R, t T9[A, B, C, D, E, F, G, H, I]) R {
	return f(t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H, t.I)
}

// Apply1E invokes an error-returning f with the tuple's slot.
func Apply1E[A, R any](f func(A) (R, error), t T1[A]) (R, error) {
	return f(t.A)
}

// Apply2E invokes an error-returning f with the tuple's slots.
func Apply2E[A, B, R any](f func(A, B) (R, error), t T2[A, B]) (R, error) {
	return f(t.A, t.B)
}

// Apply3E invokes an error-returning f with the tuple's slots.
func Apply3E[A, B, C, R any](f func(A, B, C) (R, error), t T3[A, B, C]) (R, error) {
	return f(t.A, t.B, t.C)
}

// Apply4E invokes an error-returning f with the tuple's slots.
func Apply4E[A, B, C, D, R any](f func(A, B, C, D) (R, error), t T4[A, B, C, D]) (R, error) {
	return f(t.A, t.B, t.C, t.D)
}

// Packed2 converts a two-argument function into its single-tuple-
// argument equivalent. This makes it trivial to pass arbitrary
// functions to generic operations that are designed to operate on
// single-argument functions.
func Packed2[A, B, R any](f func(A, B) R) func(T2[A, B]) R {
	return func(t T2[A, B]) R {
		return f(t.A, t.B)
	}
}

// Packed3 converts a three-argument function into its single-tuple-
// argument equivalent.
func Packed3[A, B, C, R any](f func(A, B, C) R) func(T3[A, B, C]) R {
	return func(t T3[A, B, C]) R {
		return f(t.A, t.B, t.C)
	}
}

// Packed4 converts a four-argument function into its single-tuple-
// argument equivalent.
func Packed4[A, B, C, D, R any](f func(A, B, C, D) R) func(T4[A, B, C, D]) R {
	return func(t T4[A, B, C, D]) R {
		return f(t.A, t.B, t.C, t.D)
	}
}

// Unpacked2 is the inverse of Packed2.
func Unpacked2[A, B, R any](f func(T2[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return f(T2[A, B]{a, b})
	}
}

// Unpacked3 is the inverse of Packed3.
func Unpacked3[A, B, C, R any](f func(T3[A, B, C]) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(T3[A, B, C]{a, b, c})
	}
}

// Unpacked4 is the inverse of Packed4.
func Unpacked4[A, B, C, D, R any](f func(T4[A, B, C, D]) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(T4[A, B, C, D]{a, b, c, d})
	}
}
