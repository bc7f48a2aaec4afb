// Package fn provides a small family of callable-wrapper types that
// present free functions and methods through one uniform invocation
// interface, together with composition utilities built on top of
// them: argument binding with placeholders, predicate negation and
// non-owning reference wrappers.
//
// A wrapper (F0 through F4, one type per arity) is either unbound or
// bound to exactly one target. The zero value is unbound and OK to
// use. Wrappers never own the object a method target is bound to;
// keeping that object alive is the caller's responsibility.
//
// Calling an unbound wrapper is not a programming panic: Call returns
// a *BadCallError, and the legacy Invoke form notifies an optional
// Reporter and returns a sentinel result, so code ported from
// callback-hook designs keeps working unchanged.
package fn
