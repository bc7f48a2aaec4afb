package tuple

// T0 is the empty tuple. It holds no values and is the terminal case
// for the comparison and concatenation operations: it compares equal
// to itself and never compares less.
type T0 struct{}

// T1 holds one value.
type T1[A any] struct {
	A A
}

// T2 holds two values of independent types.
type T2[A, B any] struct {
	A A
	B B
}

// T3 holds three values of independent types.
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

// T4 holds four values of independent types.
type T4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// T5 holds five values of independent types.
type T5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// T6 holds six values of independent types.
type T6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// T7 holds seven values of independent types.
type T7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// T8 holds eight values of independent types.
type T8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// T9 holds nine values of independent types.
type T9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// Pair is the conventional name for a 2-tuple.
type Pair[A, B any] = T2[A, B]

// MakePair returns a Pair holding the two given values.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

// New1 returns a T1 holding the given value.
func New1[A any](a A) T1[A] {
	return T1[A]{a}
}

// New2 returns a T2 holding the given values in order.
func New2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{a, b}
}

// New3 returns a T3 holding the given values in order.
func New3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{a, b, c}
}

// New4 returns a T4 holding the given values in order.
func New4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{a, b, c, d}
}

// New5 returns a T5 holding the given values in order.
func New5[A, B, C, D, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{a, b, c, d, e}
}

// New6 returns a T6 holding the given values in order.
func New6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{a, b, c, d, e, f}
}

// New7 returns a T7 holding the given values in order.
func New7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{a, b, c, d, e, f, g}
}

// New8 returns a T8 holding the given values in order.
func New8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{a, b, c, d, e, f, g, h}
}

// New9 returns a T9 holding the given values in order.
func New9[A, B, C, D, E, F, G, H, I any](a A, b B, c C, d D, e E, f F, g G, h H, i I) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{a, b, c, d, e, f, g, h, i}
}

// Len returns the number of slots (zero).
func (T0) Len() int { return 0 }

// Len returns the number of slots.
func (T1[A]) Len() int { return 1 }

// Len returns the number of slots.
func (T2[A, B]) Len() int { return 2 }

// Len returns the number of slots.
func (T3[A, B, C]) Len() int { return 3 }

// Len returns the number of slots.
func (T4[A, B, C, D]) Len() int { return 4 }

// Len returns the number of slots.
func (T5[A, B, C, D, E]) Len() int { return 5 }

// Len returns the number of slots.
func (T6[A, B, C, D, E, F]) Len() int { return 6 }

// Len returns the number of slots.
func (T7[A, B, C, D, E, F, G]) Len() int { return 7 }

// Len returns the number of slots.
func (T8[A, B, C, D, E, F, G, H]) Len() int { return 8 }

// Len returns the number of slots.
func (T9[A, B, C, D, E, F, G, H, I]) Len() int { return 9 }

// Unpack ejects the tuple's slots into the multiple return values
// that are customary in Go.
func (t T1[A]) Unpack() A { return t.A }

// Unpack ejects the tuple's slots into multiple return values.
func (t T2[A, B]) Unpack() (A, B) { return t.A, t.B }

// Unpack ejects the tuple's slots into multiple return values.
func (t T3[A, B, C]) Unpack() (A, B, C) { return t.A, t.B, t.C }

// Unpack ejects the tuple's slots into multiple return values.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) { return t.A, t.B, t.C, t.D }

// Unpack ejects the tuple's slots into multiple return values.
func (t T5[A, B, C, D, E]) Unpack() (A, B, C, D, E) { return t.A, t.B, t.C, t.D, t.E }

// Unpack ejects the tuple's slots into multiple return values.
func (t T6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.A, t.B, t.C, t.D, t.E, t.F
}

// Unpack ejects the tuple's slots into multiple return values.
func (t T7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.A, t.B, t.C, t.D, t.E, t.F, t.G
}

// Unpack ejects the tuple's slots into multiple return values.
func (t T8[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H) {
	return t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H
}

// Unpack ejects the tuple's slots into multiple return values.
func (t T9[A, B, C, D, E, F, G, H, I]) Unpack() (A, B, C, D, E, F, G, H, I) {
	return t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H, t.I
}
