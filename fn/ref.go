package fn

// Ref is a non-owning handle to exactly one variable. It is never
// nil: the constructor and Rebind reject nil pointers, so a Ref
// always refers to a valid variable for as long as the caller keeps
// that variable alive. Assigning one Ref to another rebinds the
// handle; it never copies the referent.
//
// Wrapping a Ref's own pointer (NewRef(r.Ptr())) yields a Ref to the
// same variable, not a reference-to-reference.
type Ref[T any] struct {
	p *T
}

// NewRef returns a Ref to the variable p points at.
// It panics if p is nil.
func NewRef[T any](p *T) Ref[T] {
	if p == nil {
		panic("fn.NewRef called with nil pointer")
	}
	return Ref[T]{p}
}

// Get returns the current value of the referent.
func (r Ref[T]) Get() T { return *r.p }

// Set assigns v to the referent. The handle itself is unchanged.
func (r Ref[T]) Set(v T) { *r.p = v }

// Ptr returns the underlying pointer.
func (r Ref[T]) Ptr() *T { return r.p }

// Rebind changes which variable the handle refers to.
// It panics if p is nil.
func (r *Ref[T]) Rebind(p *T) {
	if p == nil {
		panic("fn.Ref.Rebind called with nil pointer")
	}
	r.p = p
}

// Const returns a read-only view of the same referent.
func (r Ref[T]) Const() ConstRef[T] {
	return ConstRef[T]{r.p}
}

// ConstRef is a read-only Ref: it observes the live referent but
// provides no way to mutate it. Go has no const or volatile
// qualifiers, so the four cv-qualified wrapper variants collapse to
// Ref and ConstRef.
type ConstRef[T any] struct {
	p *T
}

// NewConstRef returns a read-only handle to the variable p points at.
// It panics if p is nil.
func NewConstRef[T any](p *T) ConstRef[T] {
	if p == nil {
		panic("fn.NewConstRef called with nil pointer")
	}
	return ConstRef[T]{p}
}

// Get returns the current value of the referent.
func (r ConstRef[T]) Get() T { return *r.p }

// Rebind changes which variable the handle refers to.
// It panics if p is nil.
func (r *ConstRef[T]) Rebind(p *T) {
	if p == nil {
		panic("fn.ConstRef.Rebind called with nil pointer")
	}
	r.p = p
}
