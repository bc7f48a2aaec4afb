package tuple

// Pairwise concatenation. ConcatMxN joins an M-tuple and an N-tuple
// into an (M+N)-tuple, preserving the per-slot types with the left
// tuple's slots first. Concatenating more than two tuples reduces to
// repeated pairwise application, left to right:
//
//	Concat3x2(Concat1x2(a, b), c)
//
// The empty tuple T0 is the identity on either side.

// Concat0x0 concatenates two empty tuples.
func Concat0x0(x, y T0) T0 { return T0{} }

// Concat0x1 prepends the empty tuple, returning y unchanged.
func Concat0x1[A any](x T0, y T1[A]) T1[A] { return y }

// Concat0x2 prepends the empty tuple, returning y unchanged.
func Concat0x2[A, B any](x T0, y T2[A, B]) T2[A, B] { return y }

// Concat0x3 prepends the empty tuple, returning y unchanged.
func Concat0x3[A, B, C any](x T0, y T3[A, B, C]) T3[A, B, C] { return y }

// Concat0x4 prepends the empty tuple, returning y unchanged.
func Concat0x4[A, B, C, D any](x T0, y T4[A, B, C, D]) T4[A, B, C, D] { return y }

// Concat0x5 prepends the empty tuple, returning y unchanged.
func Concat0x5[A, B, C, D, E any](x T0, y T5[A, B, C, D, E]) T5[A, B, C, D, E] { return y }

// Concat0x6 prepends the empty tuple, returning y unchanged.
func Concat0x6[A, B, C, D, E, F any](x T0, y T6[A, B, C, D, E, F]) T6[A, B, C, D, E, F] { return y }

// Concat0x7 prepends the empty tuple, returning y unchanged.
func Concat0x7[A, B, C, D, E, F, G any](x T0, y T7[A, B, C, D, E, F, G]) T7[A, B, C, D, E, F, G] {
	return y
}

// Concat0x8 prepends the empty tuple, returning y unchanged.
func Concat0x8[A, B, C, D, E, F, G, H any](x T0, y T8[A, B, C, D, E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return y
}

// Concat0x9 prepends the empty tuple, returning y unchanged.
func Concat0x9[A, B, C, D, E, F, G, H, I any](x T0, y T9[A, B, C, D, E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return y
}

// Concat1x0 appends the empty tuple, returning x unchanged.
func Concat1x0[A any](x T1[A], y T0) T1[A] { return x }

// Concat2x0 appends the empty tuple, returning x unchanged.
func Concat2x0[A, B any](x T2[A, B], y T0) T2[A, B] { return x }

// Concat3x0 appends the empty tuple, returning x unchanged.
func Concat3x0[A, B, C any](x T3[A, B, C], y T0) T3[A, B, C] { return x }

// Concat4x0 appends the empty tuple, returning x unchanged.
func Concat4x0[A, B, C, D any](x T4[A, B, C, D], y T0) T4[A, B, C, D] { return x }

// Concat5x0 appends the empty tuple, returning x unchanged.
func Concat5x0[A, B, C, D, E any](x T5[A, B, C, D, E], y T0) T5[A, B, C, D, E] { return x }

// Concat6x0 appends the empty tuple, returning x unchanged.
func Concat6x0[A, B, C, D, E, F any](x T6[A, B, C, D, E, F], y T0) T6[A, B, C, D, E, F] { return x }

// Concat7x0 appends the empty tuple, returning x unchanged.
func Concat7x0[A, B, C, D, E, F, G any](x T7[A, B, C, D, E, F, G], y T0) T7[A, B, C, D, E, F, G] {
	return x
}

// Concat8x0 appends the empty tuple, returning x unchanged.
func Concat8x0[A, B, C, D, E, F, G, H any](x T8[A, B, C, D, E, F, G, H], y T0) T8[A, B, C, D, E, F, G, H] {
	return x
}

// Concat9x0 appends the empty tuple, returning x unchanged.
func Concat9x0[A, B, C, D, E, F, G, H, I any](x T9[A, B, C, D, E, F, G, H, I], y T0) T9[A, B, C, D, E, F, G, H, I] {
	return x
}

// Concat1x1 concatenates two 1-tuples.
func Concat1x1[A, B any](x T1[A], y T1[B]) T2[A, B] {
	return T2[A, B]{x.A, y.A}
}

// Concat1x2 concatenates a 1-tuple and a 2-tuple.
func Concat1x2[A, B, C any](x T1[A], y T2[B, C]) T3[A, B, C] {
	return T3[A, B, C]{x.A, y.A, y.B}
}

// Concat1x3 concatenates a 1-tuple and a 3-tuple.
func Concat1x3[A, B, C, D any](x T1[A], y T3[B, C, D]) T4[A, B, C, D] {
	return T4[A, B, C, D]{x.A, y.A, y.B, y.C}
}

// Concat1x4 concatenates a 1-tuple and a 4-tuple.
func Concat1x4[A, B, C, D, E any](x T1[A], y T4[B, C, D, E]) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{x.A, y.A, y.B, y.C, y.D}
}

// Concat1x5 concatenates a 1-tuple and a 5-tuple.
func Concat1x5[A, B, C, D, E, F any](x T1[A], y T5[B, C, D, E, F]) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{x.A, y.A, y.B, y.C, y.D, y.E}
}

// Concat1x6 concatenates a 1-tuple and a 6-tuple.
func Concat1x6[A, B, C, D, E, F, G any](x T1[A], y T6[B, C, D, E, F, G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, y.A, y.B, y.C, y.D, y.E, y.F}
}

// Concat1x7 concatenates a 1-tuple and a 7-tuple.
func Concat1x7[A, B, C, D, E, F, G, H any](x T1[A], y T7[B, C, D, E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, y.A, y.B, y.C, y.D, y.E, y.F, y.G}
}

// Concat1x8 concatenates a 1-tuple and an 8-tuple.
func Concat1x8[A, B, C, D, E, F, G, H, I any](x T1[A], y T8[B, C, D, E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, y.A, y.B, y.C, y.D, y.E, y.F, y.G, y.H}
}

// Concat2x1 concatenates a 2-tuple and a 1-tuple.
func Concat2x1[A, B, C any](x T2[A, B], y T1[C]) T3[A, B, C] {
	return T3[A, B, C]{x.A, x.B, y.A}
}

// Concat2x2 concatenates two 2-tuples.
func Concat2x2[A, B, C, D any](x T2[A, B], y T2[C, D]) T4[A, B, C, D] {
	return T4[A, B, C, D]{x.A, x.B, y.A, y.B}
}

// Concat2x3 concatenates a 2-tuple and a 3-tuple.
func Concat2x3[A, B, C, D, E any](x T2[A, B], y T3[C, D, E]) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{x.A, x.B, y.A, y.B, y.C}
}

// Concat2x4 concatenates a 2-tuple and a 4-tuple.
func Concat2x4[A, B, C, D, E, F any](x T2[A, B], y T4[C, D, E, F]) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{x.A, x.B, y.A, y.B, y.C, y.D}
}

// Concat2x5 concatenates a 2-tuple and a 5-tuple.
func Concat2x5[A, B, C, D, E, F, G any](x T2[A, B], y T5[C, D, E, F, G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, x.B, y.A, y.B, y.C, y.D, y.E}
}

// Concat2x6 concatenates a 2-tuple and a 6-tuple.
func Concat2x6[A, B, C, D, E, F, G, H any](x T2[A, B], y T6[C, D, E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, y.A, y.B, y.C, y.D, y.E, y.F}
}

// Concat2x7 concatenates a 2-tuple and a 7-tuple.
func Concat2x7[A, B, C, D, E, F, G, H, I any](x T2[A, B], y T7[C, D, E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, y.A, y.B, y.C, y.D, y.E, y.F, y.G}
}

// Concat3x1 concatenates a 3-tuple and a 1-tuple.
func Concat3x1[A, B, C, D any](x T3[A, B, C], y T1[D]) T4[A, B, C, D] {
	return T4[A, B, C, D]{x.A, x.B, x.C, y.A}
}

// Concat3x2 concatenates a 3-tuple and a 2-tuple.
func Concat3x2[A, B, C, D, E any](x T3[A, B, C], y T2[D, E]) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{x.A, x.B, x.C, y.A, y.B}
}

// Concat3x3 concatenates two 3-tuples.
func Concat3x3[A, B, C, D, E, F any](x T3[A, B, C], y T3[D, E, F]) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{x.A, x.B, x.C, y.A, y.B, y.C}
}

// Concat3x4 concatenates a 3-tuple and a 4-tuple.
func Concat3x4[A, B, C, D, E, F, G any](x T3[A, B, C], y T4[D, E, F, G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, x.B, x.C, y.A, y.B, y.C, y.D}
}

// Concat3x5 concatenates a 3-tuple and a 5-tuple.
func Concat3x5[A, B, C, D, E, F, G, H any](x T3[A, B, C], y T5[D, E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, x.C, y.A, y.B, y.C, y.D, y.E}
}

// Concat3x6 concatenates a 3-tuple and a 6-tuple.
func Concat3x6[A, B, C, D, E, F, G, H, I any](x T3[A, B, C], y T6[D, E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, y.A, y.B, y.C, y.D, y.E, y.F}
}

// Concat4x1 concatenates a 4-tuple and a 1-tuple.
func Concat4x1[A, B, C, D, E any](x T4[A, B, C, D], y T1[E]) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{x.A, x.B, x.C, x.D, y.A}
}

// Concat4x2 concatenates a 4-tuple and a 2-tuple.
func Concat4x2[A, B, C, D, E, F any](x T4[A, B, C, D], y T2[E, F]) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{x.A, x.B, x.C, x.D, y.A, y.B}
}

// Concat4x3 concatenates a 4-tuple and a 3-tuple.
func Concat4x3[A, B, C, D, E, F, G any](x T4[A, B, C, D], y T3[E, F, G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, x.B, x.C, x.D, y.A, y.B, y.C}
}

// Concat4x4 concatenates two 4-tuples.
func Concat4x4[A, B, C, D, E, F, G, H any](x T4[A, B, C, D], y T4[E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, x.C, x.D, y.A, y.B, y.C, y.D}
}

// Concat4x5 concatenates a 4-tuple and a 5-tuple.
func Concat4x5[A, B, C, D, E, F, G, H, I any](x T4[A, B, C, D], y T5[E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, x.D, y.A, y.B, y.C, y.D, y.E}
}

// Concat5x1 concatenates a 5-tuple and a 1-tuple.
func Concat5x1[A, B, C, D, E, F any](x T5[A, B, C, D, E], y T1[F]) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{x.A, x.B, x.C, x.D, x.E, y.A}
}

// Concat5x2 concatenates a 5-tuple and a 2-tuple.
func Concat5x2[A, B, C, D, E, F, G any](x T5[A, B, C, D, E], y T2[F, G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, x.B, x.C, x.D, x.E, y.A, y.B}
}

// Concat5x3 concatenates a 5-tuple and a 3-tuple.
func Concat5x3[A, B, C, D, E, F, G, H any](x T5[A, B, C, D, E], y T3[F, G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, x.C, x.D, x.E, y.A, y.B, y.C}
}

// Concat5x4 concatenates a 5-tuple and a 4-tuple.
func Concat5x4[A, B, C, D, E, F, G, H, I any](x T5[A, B, C, D, E], y T4[F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, x.D, x.E, y.A, y.B, y.C, y.D}
}

// Concat6x1 concatenates a 6-tuple and a 1-tuple.
func Concat6x1[A, B, C, D, E, F, G any](x T6[A, B, C, D, E, F], y T1[G]) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{x.A, x.B, x.C, x.D, x.E, x.F, y.A}
}

// Concat6x2 concatenates a 6-tuple and a 2-tuple.
func Concat6x2[A, B, C, D, E, F, G, H any](x T6[A, B, C, D, E, F], y T2[G, H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, x.C, x.D, x.E, x.F, y.A, y.B}
}

// Concat6x3 concatenates a 6-tuple and a 3-tuple.
func Concat6x3[A, B, C, D, E, F, G, H, I any](x T6[A, B, C, D, E, F], y T3[G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, x.D, x.E, x.F, y.A, y.B, y.C}
}

// Concat7x1 concatenates a 7-tuple and a 1-tuple.
func Concat7x1[A, B, C, D, E, F, G, H any](x T7[A, B, C, D, E, F, G], y T1[H]) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{x.A, x.B, x.C, x.D, x.E, x.F, x.G, y.A}
}

// Concat7x2 concatenates a 7-tuple and a 2-tuple.
func Concat7x2[A, B, C, D, E, F, G, H, I any](x T7[A, B, C, D, E, F, G], y T2[H, I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, x.D, x.E, x.F, x.G, y.A, y.B}
}

// Concat8x1 concatenates an 8-tuple and a 1-tuple.
func Concat8x1[A, B, C, D, E, F, G, H, I any](x T8[A, B, C, D, E, F, G, H], y T1[I]) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{x.A, x.B, x.C, x.D, x.E, x.F, x.G, x.H, y.A}
}
