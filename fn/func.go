package fn

// Kind identifies what sort of target a wrapper is bound to. The
// wrapper's behaviour does not depend on the kind at call time; it is
// retained so callers can introspect how a wrapper was constructed.
type Kind uint8

const (
	// Unbound is the kind of a wrapper with no target.
	Unbound Kind = iota
	// FreeFunc is a plain function target.
	FreeFunc
	// Method is a pointer-receiver method bound to an object.
	Method
	// ConstMethod is a value-receiver method bound to an object.
	// The target reads the live object on every call but cannot
	// mutate it.
	ConstMethod
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Unbound:
		return "unbound"
	case FreeFunc:
		return "free function"
	case Method:
		return "method"
	case ConstMethod:
		return "const method"
	}
	return "invalid kind"
}

// Caller0 is the common invocation interface satisfied by all
// zero-argument wrappers, so wrappers bound to different target kinds
// can be handled through a single interface value when needed.
type Caller0[R any] interface {
	Call() (R, error)
	Invoke() R
}

// Caller1 is the common invocation interface for one-argument wrappers.
type Caller1[A, R any] interface {
	Call(A) (R, error)
	Invoke(A) R
}

// Caller2 is the common invocation interface for two-argument wrappers.
type Caller2[A, B, R any] interface {
	Call(A, B) (R, error)
	Invoke(A, B) R
}

// Caller3 is the common invocation interface for three-argument wrappers.
type Caller3[A, B, C, R any] interface {
	Call(A, B, C) (R, error)
	Invoke(A, B, C) R
}

// Caller4 is the common invocation interface for four-argument wrappers.
type Caller4[A, B, C, D, R any] interface {
	Call(A, B, C, D) (R, error)
	Invoke(A, B, C, D) R
}

// F0 wraps a zero-argument callable returning R.
//
// The wrapper holds exactly zero or one target: a free function, or a
// method bound to an object it does not own. Which kind was bound is
// fixed at construction; there is no rebinding short of whole-value
// assignment, which fully replaces the target.
type F0[R any] struct {
	call     func() R
	kind     Kind
	reporter *Reporter
}

// F1 wraps a one-argument callable. See F0 for the wrapper contract.
type F1[A, R any] struct {
	call     func(A) R
	kind     Kind
	reporter *Reporter
}

// F2 wraps a two-argument callable. See F0 for the wrapper contract.
type F2[A, B, R any] struct {
	call     func(A, B) R
	kind     Kind
	reporter *Reporter
}

// F3 wraps a three-argument callable. See F0 for the wrapper contract.
type F3[A, B, C, R any] struct {
	call     func(A, B, C) R
	kind     Kind
	reporter *Reporter
}

// F4 wraps a four-argument callable. See F0 for the wrapper contract.
type F4[A, B, C, D, R any] struct {
	call     func(A, B, C, D) R
	kind     Kind
	reporter *Reporter
}

// Free0 returns a wrapper bound to the given free function.
// It panics if f is nil.
func Free0[R any](f func() R) F0[R] {
	if f == nil {
		panic("fn.Free0 called with nil function")
	}
	return F0[R]{call: f, kind: FreeFunc}
}

// Free1 returns a wrapper bound to the given free function.
// It panics if f is nil.
func Free1[A, R any](f func(A) R) F1[A, R] {
	if f == nil {
		panic("fn.Free1 called with nil function")
	}
	return F1[A, R]{call: f, kind: FreeFunc}
}

// Free2 returns a wrapper bound to the given free function.
// It panics if f is nil.
func Free2[A, B, R any](f func(A, B) R) F2[A, B, R] {
	if f == nil {
		panic("fn.Free2 called with nil function")
	}
	return F2[A, B, R]{call: f, kind: FreeFunc}
}

// Free3 returns a wrapper bound to the given free function.
// It panics if f is nil.
func Free3[A, B, C, R any](f func(A, B, C) R) F3[A, B, C, R] {
	if f == nil {
		panic("fn.Free3 called with nil function")
	}
	return F3[A, B, C, R]{call: f, kind: FreeFunc}
}

// Free4 returns a wrapper bound to the given free function.
// It panics if f is nil.
func Free4[A, B, C, D, R any](f func(A, B, C, D) R) F4[A, B, C, D, R] {
	if f == nil {
		panic("fn.Free4 called with nil function")
	}
	return F4[A, B, C, D, R]{call: f, kind: FreeFunc}
}

// Method0 returns a wrapper bound to a pointer-receiver method on
// obj, given as a method expression such as (*Counter).Next. The
// wrapper keeps a reference to obj, not a copy: calls observe and may
// mutate the live object. It panics if obj or m is nil.
func Method0[O, R any](obj *O, m func(*O) R) F0[R] {
	if obj == nil || m == nil {
		panic("fn.Method0 called with nil object or method")
	}
	return F0[R]{
		call: func() R { return m(obj) },
		kind: Method,
	}
}

// Method1 returns a wrapper bound to a pointer-receiver method on obj.
// It panics if obj or m is nil.
func Method1[O, A, R any](obj *O, m func(*O, A) R) F1[A, R] {
	if obj == nil || m == nil {
		panic("fn.Method1 called with nil object or method")
	}
	return F1[A, R]{
		call: func(a A) R { return m(obj, a) },
		kind: Method,
	}
}

// Method2 returns a wrapper bound to a pointer-receiver method on obj.
// It panics if obj or m is nil.
func Method2[O, A, B, R any](obj *O, m func(*O, A, B) R) F2[A, B, R] {
	if obj == nil || m == nil {
		panic("fn.Method2 called with nil object or method")
	}
	return F2[A, B, R]{
		call: func(a A, b B) R { return m(obj, a, b) },
		kind: Method,
	}
}

// Method3 returns a wrapper bound to a pointer-receiver method on obj.
// It panics if obj or m is nil.
func Method3[O, A, B, C, R any](obj *O, m func(*O, A, B, C) R) F3[A, B, C, R] {
	if obj == nil || m == nil {
		panic("fn.Method3 called with nil object or method")
	}
	return F3[A, B, C, R]{
		call: func(a A, b B, c C) R { return m(obj, a, b, c) },
		kind: Method,
	}
}

// Method4 returns a wrapper bound to a pointer-receiver method on obj.
// It panics if obj or m is nil.
func Method4[O, A, B, C, D, R any](obj *O, m func(*O, A, B, C, D) R) F4[A, B, C, D, R] {
	if obj == nil || m == nil {
		panic("fn.Method4 called with nil object or method")
	}
	return F4[A, B, C, D, R]{
		call: func(a A, b B, c C, d D) R { return m(obj, a, b, c, d) },
		kind: Method,
	}
}

// ConstMethod0 returns a wrapper bound to a value-receiver method on
// obj, given as a method expression such as Counter.Value. Each call
// reads the live object through the kept pointer and passes a copy to
// the method, so the target can observe updates to obj but can never
// mutate it. It panics if obj or m is nil.
func ConstMethod0[O, R any](obj *O, m func(O) R) F0[R] {
	if obj == nil || m == nil {
		panic("fn.ConstMethod0 called with nil object or method")
	}
	return F0[R]{
		call: func() R { return m(*obj) },
		kind: ConstMethod,
	}
}

// ConstMethod1 returns a wrapper bound to a value-receiver method on obj.
// It panics if obj or m is nil.
func ConstMethod1[O, A, R any](obj *O, m func(O, A) R) F1[A, R] {
	if obj == nil || m == nil {
		panic("fn.ConstMethod1 called with nil object or method")
	}
	return F1[A, R]{
		call: func(a A) R { return m(*obj, a) },
		kind: ConstMethod,
	}
}

// ConstMethod2 returns a wrapper bound to a value-receiver method on obj.
// It panics if obj or m is nil.
func ConstMethod2[O, A, B, R any](obj *O, m func(O, A, B) R) F2[A, B, R] {
	if obj == nil || m == nil {
		panic("fn.ConstMethod2 called with nil object or method")
	}
	return F2[A, B, R]{
		call: func(a A, b B) R { return m(*obj, a, b) },
		kind: ConstMethod,
	}
}

// ConstMethod3 returns a wrapper bound to a value-receiver method on obj.
// It panics if obj or m is nil.
func ConstMethod3[O, A, B, C, R any](obj *O, m func(O, A, B, C) R) F3[A, B, C, R] {
	if obj == nil || m == nil {
		panic("fn.ConstMethod3 called with nil object or method")
	}
	return F3[A, B, C, R]{
		call: func(a A, b B, c C) R { return m(*obj, a, b, c) },
		kind: ConstMethod,
	}
}

// ConstMethod4 returns a wrapper bound to a value-receiver method on obj.
// It panics if obj or m is nil.
func ConstMethod4[O, A, B, C, D, R any](obj *O, m func(O, A, B, C, D) R) F4[A, B, C, D, R] {
	if obj == nil || m == nil {
		panic("fn.ConstMethod4 called with nil object or method")
	}
	return F4[A, B, C, D, R]{
		call: func(a A, b B, c C, d D) R { return m(*obj, a, b, c, d) },
		kind: ConstMethod,
	}
}

// IsBound reports whether the wrapper has a target.
func (f F0[R]) IsBound() bool { return f.kind != Unbound }

// IsBound reports whether the wrapper has a target.
func (f F1[A, R]) IsBound() bool { return f.kind != Unbound }

// IsBound reports whether the wrapper has a target.
func (f F2[A, B, R]) IsBound() bool { return f.kind != Unbound }

// IsBound reports whether the wrapper has a target.
func (f F3[A, B, C, R]) IsBound() bool { return f.kind != Unbound }

// IsBound reports whether the wrapper has a target.
func (f F4[A, B, C, D, R]) IsBound() bool { return f.kind != Unbound }

// Kind returns what sort of target the wrapper holds.
func (f F0[R]) Kind() Kind { return f.kind }

// Kind returns what sort of target the wrapper holds.
func (f F1[A, R]) Kind() Kind { return f.kind }

// Kind returns what sort of target the wrapper holds.
func (f F2[A, B, R]) Kind() Kind { return f.kind }

// Kind returns what sort of target the wrapper holds.
func (f F3[A, B, C, R]) Kind() Kind { return f.kind }

// Kind returns what sort of target the wrapper holds.
func (f F4[A, B, C, D, R]) Kind() Kind { return f.kind }

// Call invokes the target and returns its result. If the wrapper is
// unbound it returns the zero R and a *BadCallError carrying the
// call site.
func (f F0[R]) Call() (R, error) {
	if f.kind == Unbound {
		var zero R
		return zero, badCall(1)
	}
	return f.call(), nil
}

// Call invokes the target with the given argument. If the wrapper is
// unbound it returns the zero R and a *BadCallError.
func (f F1[A, R]) Call(a A) (R, error) {
	if f.kind == Unbound {
		var zero R
		return zero, badCall(1)
	}
	return f.call(a), nil
}

// Call invokes the target with the given arguments. If the wrapper is
// unbound it returns the zero R and a *BadCallError.
func (f F2[A, B, R]) Call(a A, b B) (R, error) {
	if f.kind == Unbound {
		var zero R
		return zero, badCall(1)
	}
	return f.call(a, b), nil
}

// Call invokes the target with the given arguments. If the wrapper is
// unbound it returns the zero R and a *BadCallError.
func (f F3[A, B, C, R]) Call(a A, b B, c C) (R, error) {
	if f.kind == Unbound {
		var zero R
		return zero, badCall(1)
	}
	return f.call(a, b, c), nil
}

// Call invokes the target with the given arguments. If the wrapper is
// unbound it returns the zero R and a *BadCallError.
func (f F4[A, B, C, D, R]) Call(a A, b B, c C, d D) (R, error) {
	if f.kind == Unbound {
		var zero R
		return zero, badCall(1)
	}
	return f.call(a, b, c, d), nil
}

// Invoke invokes the target and returns its result. If the wrapper is
// unbound, Invoke notifies the wrapper's reporter exactly once (if
// one was attached with WithReporter) and returns the sentinel value
// for R: -1 converted to R for numeric types, the zero value
// otherwise. Prefer Call in new code; Invoke exists for call sites
// ported from hook-and-sentinel error designs.
func (f F0[R]) Invoke() R {
	if f.kind == Unbound {
		f.reporter.report(badCall(1))
		return sentinel[R]()
	}
	return f.call()
}

// Invoke is like Call but reports an unbound wrapper through the
// attached reporter and returns the sentinel value. See F0.Invoke.
func (f F1[A, R]) Invoke(a A) R {
	if f.kind == Unbound {
		f.reporter.report(badCall(1))
		return sentinel[R]()
	}
	return f.call(a)
}

// Invoke is like Call but reports an unbound wrapper through the
// attached reporter and returns the sentinel value. See F0.Invoke.
func (f F2[A, B, R]) Invoke(a A, b B) R {
	if f.kind == Unbound {
		f.reporter.report(badCall(1))
		return sentinel[R]()
	}
	return f.call(a, b)
}

// Invoke is like Call but reports an unbound wrapper through the
// attached reporter and returns the sentinel value. See F0.Invoke.
func (f F3[A, B, C, R]) Invoke(a A, b B, c C) R {
	if f.kind == Unbound {
		f.reporter.report(badCall(1))
		return sentinel[R]()
	}
	return f.call(a, b, c)
}

// Invoke is like Call but reports an unbound wrapper through the
// attached reporter and returns the sentinel value. See F0.Invoke.
func (f F4[A, B, C, D, R]) Invoke(a A, b B, c C, d D) R {
	if f.kind == Unbound {
		f.reporter.report(badCall(1))
		return sentinel[R]()
	}
	return f.call(a, b, c, d)
}

// WithReporter returns a copy of the wrapper that notifies r when
// Invoke is called while unbound. A nil r detaches the reporter.
func (f F0[R]) WithReporter(r *Reporter) F0[R] { f.reporter = r; return f }

// WithReporter returns a copy of the wrapper that notifies r when
// Invoke is called while unbound.
func (f F1[A, R]) WithReporter(r *Reporter) F1[A, R] { f.reporter = r; return f }

// WithReporter returns a copy of the wrapper that notifies r when
// Invoke is called while unbound.
func (f F2[A, B, R]) WithReporter(r *Reporter) F2[A, B, R] { f.reporter = r; return f }

// WithReporter returns a copy of the wrapper that notifies r when
// Invoke is called while unbound.
func (f F3[A, B, C, R]) WithReporter(r *Reporter) F3[A, B, C, R] { f.reporter = r; return f }

// WithReporter returns a copy of the wrapper that notifies r when
// Invoke is called while unbound.
func (f F4[A, B, C, D, R]) WithReporter(r *Reporter) F4[A, B, C, D, R] { f.reporter = r; return f }

// Swap exchanges the targets of the two wrappers.
func (f *F0[R]) Swap(g *F0[R]) { *f, *g = *g, *f }

// Swap exchanges the targets of the two wrappers.
func (f *F1[A, R]) Swap(g *F1[A, R]) { *f, *g = *g, *f }

// Swap exchanges the targets of the two wrappers.
func (f *F2[A, B, R]) Swap(g *F2[A, B, R]) { *f, *g = *g, *f }

// Swap exchanges the targets of the two wrappers.
func (f *F3[A, B, C, R]) Swap(g *F3[A, B, C, R]) { *f, *g = *g, *f }

// Swap exchanges the targets of the two wrappers.
func (f *F4[A, B, C, D, R]) Swap(g *F4[A, B, C, D, R]) { *f, *g = *g, *f }

// Take moves the wrapper's target out, leaving the receiver unbound.
func (f *F0[R]) Take() F0[R] {
	t := *f
	*f = F0[R]{}
	return t
}

// Take moves the wrapper's target out, leaving the receiver unbound.
func (f *F1[A, R]) Take() F1[A, R] {
	t := *f
	*f = F1[A, R]{}
	return t
}

// Take moves the wrapper's target out, leaving the receiver unbound.
func (f *F2[A, B, R]) Take() F2[A, B, R] {
	t := *f
	*f = F2[A, B, R]{}
	return t
}

// Take moves the wrapper's target out, leaving the receiver unbound.
func (f *F3[A, B, C, R]) Take() F3[A, B, C, R] {
	t := *f
	*f = F3[A, B, C, R]{}
	return t
}

// Take moves the wrapper's target out, leaving the receiver unbound.
func (f *F4[A, B, C, D, R]) Take() F4[A, B, C, D, R] {
	t := *f
	*f = F4[A, B, C, D, R]{}
	return t
}

// Reset unbinds the wrapper.
func (f *F0[R]) Reset() { *f = F0[R]{} }

// Reset unbinds the wrapper.
func (f *F1[A, R]) Reset() { *f = F1[A, R]{} }

// Reset unbinds the wrapper.
func (f *F2[A, B, R]) Reset() { *f = F2[A, B, R]{} }

// Reset unbinds the wrapper.
func (f *F3[A, B, C, R]) Reset() { *f = F3[A, B, C, R]{} }

// Reset unbinds the wrapper.
func (f *F4[A, B, C, D, R]) Reset() { *f = F4[A, B, C, D, R]{} }

// Func returns the wrapped target as a plain function, or nil if the
// wrapper is unbound.
func (f F0[R]) Func() func() R { return f.call }

// Func returns the wrapped target as a plain function, or nil if the
// wrapper is unbound.
func (f F1[A, R]) Func() func(A) R { return f.call }

// Func returns the wrapped target as a plain function, or nil if the
// wrapper is unbound.
func (f F2[A, B, R]) Func() func(A, B) R { return f.call }

// Func returns the wrapped target as a plain function, or nil if the
// wrapper is unbound.
func (f F3[A, B, C, R]) Func() func(A, B, C) R { return f.call }

// Func returns the wrapped target as a plain function, or nil if the
// wrapper is unbound.
func (f F4[A, B, C, D, R]) Func() func(A, B, C, D) R { return f.call }
