package fn

// Not negates a zero-argument predicate.
func Not(pred func() bool) func() bool {
	return func() bool {
		return !pred()
	}
}

// Not1 negates a one-argument predicate, forwarding the argument
// unchanged.
func Not1[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool {
		return !pred(a)
	}
}

// Not2 negates a two-argument predicate, forwarding the arguments
// unchanged.
func Not2[A, B any](pred func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool {
		return !pred(a, b)
	}
}

// Not3 negates a three-argument predicate, forwarding the arguments
// unchanged.
func Not3[A, B, C any](pred func(A, B, C) bool) func(A, B, C) bool {
	return func(a A, b B, c C) bool {
		return !pred(a, b, c)
	}
}

// NotBound negates a bound callable whose single result is a bool,
// preserving Bind's calling convention. A result that is not a single
// bool surfaces as an error.
func NotBound(b *Bound) func(...any) (bool, error) {
	return func(args ...any) (bool, error) {
		v, err := Call1[bool](b, args...)
		if err != nil {
			return false, err
		}
		return !v, nil
	}
}
