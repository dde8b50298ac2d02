// Package comparators provides ready-made aatree.Comparator
// implementations for common key shapes, generalizing the teacher's
// per-type comparator structs (Uint32Comparator, Uint64Comparator, ...)
// into a single generic type over any ordered primitive.
package comparators

import "golang.org/x/exp/constraints"

// Ordered is an aatree.Comparator for any type satisfying
// constraints.Ordered (the integer, float, and string kinds). It
// replaces a family of single-type comparator structs with one generic
// implementation.
type Ordered[T constraints.Ordered] struct{}

// Compare implements aatree.Comparator.
func (Ordered[T]) Compare(a, b *T) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
