package fn_test

import (
	"testing"

	"github.com/fnkit/fnkit/fn"
)

func TestRef(t *testing.T) {
	x := 1
	r := fn.NewRef(&x)

	if got := r.Get(); got != 1 {
		t.Errorf("Get = %d; want 1", got)
	}

	// Set writes through to the referent.
	r.Set(5)
	if x != 5 {
		t.Errorf("referent = %d; want 5", x)
	}

	// The handle observes external writes.
	x = 9
	if got := r.Get(); got != 9 {
		t.Errorf("Get = %d; want 9", got)
	}
}

func TestRefRebind(t *testing.T) {
	x, y := 1, 2
	r := fn.NewRef(&x)
	r.Rebind(&y)

	// Rebinding changes the referent without copying values.
	r.Set(7)
	if x != 1 {
		t.Errorf("old referent = %d; want 1", x)
	}
	if y != 7 {
		t.Errorf("new referent = %d; want 7", y)
	}
}

func TestRefRewrap(t *testing.T) {
	x := 3
	r := fn.NewRef(&x)
	r2 := fn.NewRef(r.Ptr())

	// Re-wrapping yields a handle to the same variable, not a
	// reference-to-reference.
	r2.Set(4)
	if got := r.Get(); got != 4 {
		t.Errorf("original handle Get = %d; want 4", got)
	}
}

func TestConstRef(t *testing.T) {
	x := 1
	r := fn.NewConstRef(&x)

	x = 2
	if got := r.Get(); got != 2 {
		t.Errorf("Get = %d; want 2", got)
	}

	cr := fn.NewRef(&x).Const()
	if got := cr.Get(); got != 2 {
		t.Errorf("Const view Get = %d; want 2", got)
	}

	y := 10
	r.Rebind(&y)
	if got := r.Get(); got != 10 {
		t.Errorf("Get after Rebind = %d; want 10", got)
	}
}

func TestRefNilPanics(t *testing.T) {
	mustPanic(t, func() { fn.NewRef[int](nil) })
	mustPanic(t, func() { fn.NewConstRef[int](nil) })

	x := 1
	r := fn.NewRef(&x)
	mustPanic(t, func() { r.Rebind(nil) })

	cr := fn.NewConstRef(&x)
	mustPanic(t, func() { cr.Rebind(nil) })
}
