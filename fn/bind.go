package fn

import (
	"fmt"
	"reflect"
)

// Placeholder marks a bind slot whose value is supplied at call time.
// The value of the placeholder is the 1-based position of the
// call-site argument to substitute.
type Placeholder int

// The placeholder constants. P1 substitutes the first call-site
// argument, P2 the second, and so on.
const (
	P1 Placeholder = iota + 1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
)

// IsPlaceholder returns the 1-based argument position carried by v if
// it is a placeholder, and 0 otherwise.
func IsPlaceholder(v any) int {
	p, ok := v.(Placeholder)
	if !ok || p < P1 || p > P9 {
		return 0
	}
	return int(p)
}

// Bound is the result of Bind: a callable that owns its wrapped
// function and a captured slot per parameter, where each slot is
// either a concrete value or a placeholder. Each invocation
// independently substitutes the current call-site arguments for the
// placeholders; the substituted list is passed to the wrapped
// function in slot order, never call-site order.
type Bound struct {
	fv     reflect.Value
	ft     reflect.Type
	slots  []any
	needed int // highest placeholder position among the slots
}

// Bind captures f together with one slot per parameter and returns
// the bound callable. Each slot is either a value to pass on every
// call or a placeholder (P1..P9) to be filled from the call-site
// arguments.
//
// Bind panics if f is not a non-variadic function, if the slot count
// does not match f's parameter count, or if a non-placeholder slot
// cannot be assigned or converted to its parameter type. These are
// the conditions a statically typed binder would reject at compile
// time.
func Bind(f any, slots ...any) *Bound {
	fv := reflect.ValueOf(f)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		panic("fn.Bind: target is not a function")
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		panic("fn.Bind: variadic functions are not supported")
	}
	if len(slots) != ft.NumIn() {
		panic(fmt.Sprintf("fn.Bind: %d slots for a %d-parameter function", len(slots), ft.NumIn()))
	}
	b := &Bound{
		fv:    fv,
		ft:    ft,
		slots: append([]any(nil), slots...),
	}
	for i, s := range slots {
		if k := IsPlaceholder(s); k > 0 {
			if k > b.needed {
				b.needed = k
			}
			continue
		}
		if _, err := argValue(s, ft.In(i)); err != nil {
			panic(fmt.Sprintf("fn.Bind: slot %d: %v", i, err))
		}
	}
	return b
}

// NumArgs returns the minimum number of call-site arguments an
// invocation must supply: the highest placeholder position bound, or
// zero if every slot holds a value.
func (b *Bound) NumArgs() int {
	return b.needed
}

// Call invokes the wrapped function. Each placeholder slot P k is
// replaced by args[k-1]; value slots are passed unchanged. Surplus
// call-site arguments are ignored, matching the usual binder
// contract. The wrapped function's results are returned as a slice.
//
// Call panics if fewer than NumArgs arguments are supplied; that is a
// precondition, not a recoverable condition. A call-site argument
// whose type cannot be assigned or converted to the parameter type
// yields an error.
func (b *Bound) Call(args ...any) ([]any, error) {
	if len(args) < b.needed {
		panic(fmt.Sprintf("fn.Bound.Call: placeholder position %d exceeds %d supplied arguments", b.needed, len(args)))
	}
	in := make([]reflect.Value, len(b.slots))
	for i, s := range b.slots {
		v := s
		if k := IsPlaceholder(s); k > 0 {
			v = args[k-1]
		}
		av, err := argValue(v, b.ft.In(i))
		if err != nil {
			return nil, fmt.Errorf("fn.Bound.Call: argument %d: %v", i, err)
		}
		in[i] = av
	}
	out := b.fv.Call(in)
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}

// isBindExpression tags Bound for IsBindExpression. It carries no
// behaviour.
func (b *Bound) isBindExpression() {}

// IsBindExpression reports whether v is the result of Bind. It is a
// tag check only: a nested bind result passed as a bound value is
// substituted like any other value, not flattened.
func IsBindExpression(v any) bool {
	_, ok := v.(interface{ isBindExpression() })
	return ok
}

// Call1 invokes b and returns its single result as type R.
func Call1[R any](b *Bound, args ...any) (R, error) {
	var zero R
	out, err := b.Call(args...)
	if err != nil {
		return zero, err
	}
	if len(out) != 1 {
		return zero, fmt.Errorf("fn.Call1: function returned %d results", len(out))
	}
	r, ok := out[0].(R)
	if !ok {
		return zero, fmt.Errorf("fn.Call1: result is %T, not %T", out[0], zero)
	}
	return r, nil
}

// Call2 invokes b and returns its two results as types R0 and R1.
func Call2[R0, R1 any](b *Bound, args ...any) (R0, R1, error) {
	var zero0 R0
	var zero1 R1
	out, err := b.Call(args...)
	if err != nil {
		return zero0, zero1, err
	}
	if len(out) != 2 {
		return zero0, zero1, fmt.Errorf("fn.Call2: function returned %d results", len(out))
	}
	r0, ok0 := out[0].(R0)
	r1, ok1 := out[1].(R1)
	if !ok0 || !ok1 {
		return zero0, zero1, fmt.Errorf("fn.Call2: results are (%T, %T), not (%T, %T)", out[0], out[1], zero0, zero1)
	}
	return r0, r1, nil
}

// argValue converts v for use as an argument of type t.
func argValue(v any, t reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		// Untyped nil: acceptable only for nilable parameter types.
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a valid %s", t)
	}
	switch {
	case rv.Type().AssignableTo(t):
		return rv, nil
	case rv.Type().ConvertibleTo(t):
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", rv.Type(), t)
}

// Bind1st fixes the first argument of a two-argument function,
// returning a function of the second.
func Bind1st[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Bind2nd fixes the second argument of a two-argument function,
// returning a function of the first.
func Bind2nd[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}
