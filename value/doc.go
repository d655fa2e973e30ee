// Package value implements the refcounted tagged-value graph: Value,
// Variable, Set/Object, Array, and Function, plus the per-type operator
// dispatch table and coercion rules (spec.md §3, §4.2).
//
// Grounded on other_examples/cpunion-vox-lang__value.go's closed sum-type
// Value layout, adapted from a GC'd clone-on-copy value to an
// explicit-refcount value: every Value begins at refcount 1 on creation;
// binding a Variable increments it, unbinding decrements it, and reaching
// zero frees the value and recursively releases its interior (spec.md
// §4.2, §9 "Cyclic structures" — ownership edges run variable → value,
// array/object/function → owned variable, never the reverse, so no cycle
// can close through them).
package value
