package tuple

import "cmp"

// The comparison functions order tuples lexicographically: the first
// slots are compared, and only if they are equal are the second slots
// consulted, and so on. The empty tuple T0 is the base case: two
// empty tuples are always equal and neither is less than the other.

// Compare0 returns 0: empty tuples are always equal.
func Compare0(x, y T0) int { return 0 }

// Compare1 compares two 1-tuples.
func Compare1[A cmp.Ordered](x, y T1[A]) int {
	return cmp.Compare(x.A, y.A)
}

// Compare2 lexicographically compares two 2-tuples, returning
// -1, 0 or +1 as x is less than, equal to or greater than y.
func Compare2[A, B cmp.Ordered](x, y T2[A, B]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}

// Compare3 lexicographically compares two 3-tuples.
func Compare3[A, B, C cmp.Ordered](x, y T3[A, B, C]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	return cmp.Compare(x.C, y.C)
}

// Compare4 lexicographically compares two 4-tuples.
func Compare4[A, B, C, D cmp.Ordered](x, y T4[A, B, C, D]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	return cmp.Compare(x.D, y.D)
}

// Compare5 lexicographically compares two 5-tuples.
func Compare5[A, B, C, D, E cmp.Ordered](x, y T5[A, B, C, D, E]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	if c := cmp.Compare(x.D, y.D); c != 0 {
		return c
	}
	return cmp.Compare(x.E, y.E)
}

// Compare6 lexicographically compares two 6-tuples.
func Compare6[A, B, C, D, E, F cmp.Ordered](x, y T6[A, B, C, D, E, F]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	if c := cmp.Compare(x.D, y.D); c != 0 {
		return c
	}
	if c := cmp.Compare(x.E, y.E); c != 0 {
		return c
	}
	return cmp.Compare(x.F, y.F)
}

// Compare7 lexicographically compares two 7-tuples.
func Compare7[A, B, C, D, E, F, G cmp.Ordered](x, y T7[A, B, C, D, E, F, G]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	if c := cmp.Compare(x.D, y.D); c != 0 {
		return c
	}
	if c := cmp.Compare(x.E, y.E); c != 0 {
		return c
	}
	if c := cmp.Compare(x.F, y.F); c != 0 {
		return c
	}
	return cmp.Compare(x.G, y.G)
}

// Compare8 lexicographically compares two 8-tuples.
func Compare8[A, B, C, D, E, F, G, H cmp.Ordered](x, y T8[A, B, C, D, E, F, G, H]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	if c := cmp.Compare(x.D, y.D); c != 0 {
		return c
	}
	if c := cmp.Compare(x.E, y.E); c != 0 {
		return c
	}
	if c := cmp.Compare(x.F, y.F); c != 0 {
		return c
	}
	if c := cmp.Compare(x.G, y.G); c != 0 {
		return c
	}
	return cmp.Compare(x.H, y.H)
}

// Compare9 lexicographically compares two 9-tuples.
func Compare9[A, B, C, D, E, F, G, H, I cmp.Ordered](x, y T9[A, B, C, D, E, F, G, H, I]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	if c := cmp.Compare(x.B, y.B); c != 0 {
		return c
	}
	if c := cmp.Compare(x.C, y.C); c != 0 {
		return c
	}
	if c := cmp.Compare(x.D, y.D); c != 0 {
		return c
	}
	if c := cmp.Compare(x.E, y.E); c != 0 {
		return c
	}
	if c := cmp.Compare(x.F, y.F); c != 0 {
		return c
	}
	if c := cmp.Compare(x.G, y.G); c != 0 {
		return c
	}
	if c := cmp.Compare(x.H, y.H); c != 0 {
		return c
	}
	return cmp.Compare(x.I, y.I)
}

// Less0 returns false: an empty tuple is never less than another.
func Less0(x, y T0) bool { return false }

// Less1 reports whether x orders before y.
func Less1[A cmp.Ordered](x, y T1[A]) bool { return Compare1(x, y) < 0 }

// Less2 reports whether x orders lexicographically before y.
func Less2[A, B cmp.Ordered](x, y T2[A, B]) bool { return Compare2(x, y) < 0 }

// Less3 reports whether x orders lexicographically before y.
func Less3[A, B, C cmp.Ordered](x, y T3[A, B, C]) bool { return Compare3(x, y) < 0 }

// Less4 reports whether x orders lexicographically before y.
func Less4[A, B, C, D cmp.Ordered](x, y T4[A, B, C, D]) bool { return Compare4(x, y) < 0 }

// Less5 reports whether x orders lexicographically before y.
func Less5[A, B, C, D, E cmp.Ordered](x, y T5[A, B, C, D, E]) bool { return Compare5(x, y) < 0 }

// Less6 reports whether x orders lexicographically before y.
func Less6[A, B, C, D, E, F cmp.Ordered](x, y T6[A, B, C, D, E, F]) bool { return Compare6(x, y) < 0 }

// Less7 reports whether x orders lexicographically before y.
func Less7[A, B, C, D, E, F, G cmp.Ordered](x, y T7[A, B, C, D, E, F, G]) bool {
	return Compare7(x, y) < 0
}

// Less8 reports whether x orders lexicographically before y.
func Less8[A, B, C, D, E, F, G, H cmp.Ordered](x, y T8[A, B, C, D, E, F, G, H]) bool {
	return Compare8(x, y) < 0
}

// Less9 reports whether x orders lexicographically before y.
func Less9[A, B, C, D, E, F, G, H, I cmp.Ordered](x, y T9[A, B, C, D, E, F, G, H, I]) bool {
	return Compare9(x, y) < 0
}

// Equal0 returns true: empty tuples are always equal.
func Equal0(x, y T0) bool { return true }

// Equal1 reports whether the two tuples hold equal values.
func Equal1[A comparable](x, y T1[A]) bool { return x == y }

// Equal2 reports whether the two tuples hold equal values in every
// slot. For tuples whose slots are all comparable, the built-in ==
// operator works directly on the struct values; these functions exist
// so equality can be passed around as a first-class operation.
func Equal2[A, B comparable](x, y T2[A, B]) bool { return x == y }

// Equal3 reports whether the two tuples hold equal values in every slot.
func Equal3[A, B, C comparable](x, y T3[A, B, C]) bool { return x == y }

// Equal4 reports whether the two tuples hold equal values in every slot.
func Equal4[A, B, C, D comparable](x, y T4[A, B, C, D]) bool { return x == y }

// Equal5 reports whether the two tuples hold equal values in every slot.
func Equal5[A, B, C, D, E comparable](x, y T5[A, B, C, D, E]) bool { return x == y }

// Equal6 reports whether the two tuples hold equal values in every slot.
func Equal6[A, B, C, D, E, F comparable](x, y T6[A, B, C, D, E, F]) bool { return x == y }

// Equal7 reports whether the two tuples hold equal values in every slot.
func Equal7[A, B, C, D, E, F, G comparable](x, y T7[A, B, C, D, E, F, G]) bool { return x == y }

// Equal8 reports whether the two tuples hold equal values in every slot.
func Equal8[A, B, C, D, E, F, G, H comparable](x, y T8[A, B, C, D, E, F, G, H]) bool { return x == y }

// Equal9 reports whether the two tuples hold equal values in every slot.
func Equal9[A, B, C, D, E, F, G, H, I comparable](x, y T9[A, B, C, D, E, F, G, H, I]) bool {
	return x == y
}

// CompareFunc2 is like Compare2 but uses the given per-slot
// comparison functions, so the slot types need not be ordered
// themselves.
func CompareFunc2[A, B any](x, y T2[A, B], cmpA func(A, A) int, cmpB func(B, B) int) int {
	if c := cmpA(x.A, y.A); c != 0 {
		return c
	}
	return cmpB(x.B, y.B)
}

// CompareFunc3 is like Compare3 but uses the given per-slot
// comparison functions.
func CompareFunc3[A, B, C any](x, y T3[A, B, C], cmpA func(A, A) int, cmpB func(B, B) int, cmpC func(C, C) int) int {
	if c := cmpA(x.A, y.A); c != 0 {
		return c
	}
	if c := cmpB(x.B, y.B); c != 0 {
		return c
	}
	return cmpC(x.C, y.C)
}

// CompareFunc4 is like Compare4 but uses the given per-slot
// comparison functions.
func CompareFunc4[A, B, C, D any](x, y T4[A, B, C, D], cmpA func(A, A) int, cmpB func(B, B) int, cmpC func(C, C) int, cmpD func(D, D) int) int {
	if c := cmpA(x.A, y.A); c != 0 {
		return c
	}
	if c := cmpB(x.B, y.B); c != 0 {
		return c
	}
	if c := cmpC(x.C, y.C); c != 0 {
		return c
	}
	return cmpD(x.D, y.D)
}
