// Package tuple provides generic struct types that hold a fixed
// number of heterogeneously typed values, along with comparison,
// concatenation and function-application operations over them.
//
// The types T0 through T9 are ordinary product types: each slot is an
// exported field, so indexed access is plain field access and an
// out-of-range index cannot be written at all. Slot order is
// significant everywhere: construction, comparison, concatenation and
// Apply all walk the slots left to right.
//
// A tuple of pointers (see Tie2 and friends) acts as a non-owning,
// write-through view over existing variables, for building argument
// lists without copying.
package tuple
