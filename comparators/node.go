package comparators

import (
	"golang.org/x/exp/constraints"

	"github.com/fantom-foundation-labs/aatree/aatree"
)

// OrderedNode is a ready-to-use aatree node for callers who just need a
// tree keyed by a plain ordered value and have no other payload to
// attach. It embeds aatree.Links so *OrderedNode[T] satisfies
// aatree.Linkable[OrderedNode[T]] directly.
type OrderedNode[T constraints.Ordered] struct {
	aatree.Links[OrderedNode[T]]
	Value T
}

// OrderedNodeComparator is an aatree.Comparator for OrderedNode[T],
// ordering by the embedded Value field via Ordered[T].
type OrderedNodeComparator[T constraints.Ordered] struct{}

// Compare implements aatree.Comparator.
func (OrderedNodeComparator[T]) Compare(a, b *OrderedNode[T]) int {
	var ord Ordered[T]
	return ord.Compare(&a.Value, &b.Value)
}
