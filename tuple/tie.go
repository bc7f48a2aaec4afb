package tuple

// A tied tuple holds pointers to existing variables rather than
// copies of their values. It is a non-owning, write-through view:
// assigning through the pointers updates the tied variables, and the
// caller is responsible for keeping them alive while the view is in
// use.

// Tie2 returns a tuple of pointers to the given variables.
func Tie2[A, B any](a *A, b *B) T2[*A, *B] {
	return T2[*A, *B]{a, b}
}

// Tie3 returns a tuple of pointers to the given variables.
func Tie3[A, B, C any](a *A, b *B, c *C) T3[*A, *B, *C] {
	return T3[*A, *B, *C]{a, b, c}
}

// Tie4 returns a tuple of pointers to the given variables.
func Tie4[A, B, C, D any](a *A, b *B, c *C, d *D) T4[*A, *B, *C, *D] {
	return T4[*A, *B, *C, *D]{a, b, c, d}
}

// Deref2 copies the values out of a tied tuple.
func Deref2[A, B any](t T2[*A, *B]) T2[A, B] {
	return T2[A, B]{*t.A, *t.B}
}

// Deref3 copies the values out of a tied tuple.
func Deref3[A, B, C any](t T3[*A, *B, *C]) T3[A, B, C] {
	return T3[A, B, C]{*t.A, *t.B, *t.C}
}

// Deref4 copies the values out of a tied tuple.
func Deref4[A, B, C, D any](t T4[*A, *B, *C, *D]) T4[A, B, C, D] {
	return T4[A, B, C, D]{*t.A, *t.B, *t.C, *t.D}
}

// Assign2 writes the values of src through the pointers held by dst.
func Assign2[A, B any](dst T2[*A, *B], src T2[A, B]) {
	*dst.A = src.A
	*dst.B = src.B
}

// Assign3 writes the values of src through the pointers held by dst.
func Assign3[A, B, C any](dst T3[*A, *B, *C], src T3[A, B, C]) {
	*dst.A = src.A
	*dst.B = src.B
	*dst.C = src.C
}

// Assign4 writes the values of src through the pointers held by dst.
func Assign4[A, B, C, D any](dst T4[*A, *B, *C, *D], src T4[A, B, C, D]) {
	*dst.A = src.A
	*dst.B = src.B
	*dst.C = src.C
	*dst.D = src.D
}
