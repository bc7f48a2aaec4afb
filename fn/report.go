package fn

import (
	"fmt"
	"reflect"
	"runtime"
)

// BadCallError describes an invocation of an unbound wrapper. It
// carries the source location of the offending call.
type BadCallError struct {
	File string
	Line int
}

// Error implements the error interface.
func (e *BadCallError) Error() string {
	if e.File == "" {
		return "fn: call of unbound function wrapper"
	}
	return fmt.Sprintf("fn: call of unbound function wrapper at %s:%d", e.File, e.Line)
}

// badCall builds a BadCallError for the caller skip+1 frames up.
func badCall(skip int) *BadCallError {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return &BadCallError{}
	}
	return &BadCallError{File: file, Line: line}
}

// A Reporter delivers bad-call notifications to at most one handler.
// It is an explicitly constructed registry: attach one to a wrapper
// with WithReporter rather than relying on process-wide state. A nil
// *Reporter is valid and discards all notifications, as does a
// Reporter with no handler set, so invoking an unbound wrapper
// without a handler registered is silent.
//
// Like the rest of this package, a Reporter performs no locking;
// callers using one from multiple goroutines must synchronize.
type Reporter struct {
	handler func(*BadCallError)
}

// NewReporter returns a Reporter delivering to h. A nil h is allowed
// and can be replaced later with SetHandler.
func NewReporter(h func(*BadCallError)) *Reporter {
	return &Reporter{handler: h}
}

// SetHandler replaces the reporter's handler. A nil h unregisters it.
func (r *Reporter) SetHandler(h func(*BadCallError)) {
	r.handler = h
}

// report delivers err to the handler, if any. Safe on a nil receiver.
func (r *Reporter) report(err *BadCallError) {
	if r == nil || r.handler == nil {
		return
	}
	r.handler(err)
}

// sentinel returns the stand-in result for an invocation that could
// not be performed: -1 converted to R when R is numeric (for unsigned
// types the conversion wraps to the maximum value, matching what an
// explicit cast of -1 would produce), and the zero value for every
// other type, where no numeric conversion applies.
func sentinel[R any]() R {
	var r R
	v := reflect.ValueOf(&r).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(-1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(^uint64(0))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(-1)
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(-1)
	}
	return r
}
