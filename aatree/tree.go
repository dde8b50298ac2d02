package aatree

import (
	"unsafe"

	"github.com/fantom-foundation-labs/aatree/internal/common"
)

// Tree is the container handle: a single optional root link plus the
// comparator used to order nodes. There is no side table — the entire
// container state is this struct plus the transitively reachable
// nodes' Links fields.
//
// The zero value is not ready to use; construct a Tree with New.
type Tree[T any, H Linkable[T]] struct {
	root H
	cmp  Comparator[T]
}

// New creates an empty tree ordered by cmp.
func New[T any, H Linkable[T]](cmp Comparator[T]) *Tree[T, H] {
	return &Tree[T, H]{cmp: cmp}
}

// Insert places item in the tree.
//
// If no node with an equal key exists, item becomes a new node at a
// leaf position and Insert returns nil.
//
// If a node old with an equal key exists, item is installed in old's
// slot — inheriting old's left, right, and level — and old is returned
// with its links cleared (detached). Tree size and structure are
// otherwise unchanged.
//
// item must be detached (its links fields zero or inherited from a
// prior removal); inserting a node that is already in this or another
// tree is a contract violation with undefined behavior.
func (t *Tree[T, H]) Insert(item H) H {
	newRoot, replaced := insert0[T, H](t.root, item, t.cmp)
	t.root = newRoot
	if replaced != nil {
		reset[T, H](replaced)
	}
	return replaced
}

// Delete removes the node equal to probe, if one exists, and returns it
// detached. Only probe's key needs to be initialised. Returns nil if no
// such node is in the tree.
func (t *Tree[T, H]) Delete(probe H) H {
	newRoot, removed := delete0[T, H](t.root, probe, t.cmp)
	t.root = newRoot
	if removed != nil {
		reset[T, H](removed)
	}
	return removed
}

// DeleteFirst removes and returns the minimum-key node, detached, or
// nil if the tree is empty.
func (t *Tree[T, H]) DeleteFirst() H {
	newRoot, removed := deleteFirst0[T, H](t.root)
	t.root = newRoot
	if removed != nil {
		reset[T, H](removed)
	}
	return removed
}

// DeleteLast removes and returns the maximum-key node, detached, or nil
// if the tree is empty.
func (t *Tree[T, H]) DeleteLast() H {
	newRoot, removed := deleteLast0[T, H](t.root)
	t.root = newRoot
	if removed != nil {
		reset[T, H](removed)
	}
	return removed
}

// Search returns the in-tree node equal to probe under the comparator,
// or nil if none exists. Only probe's key needs to be initialised.
func (t *Tree[T, H]) Search(probe H) H {
	n := t.root
	for n != nil {
		switch c := t.cmp.Compare(probe, n); {
		case c < 0:
			n = n.Left()
		case c > 0:
			n = n.Right()
		default:
			return n
		}
	}
	return n
}

// First returns the minimum-key node, or nil if the tree is empty.
func (t *Tree[T, H]) First() H {
	n := t.root
	if n == nil {
		return n
	}
	for n.Left() != nil {
		n = n.Left()
	}
	return n
}

// Last returns the maximum-key node, or nil if the tree is empty.
func (t *Tree[T, H]) Last() H {
	n := t.root
	if n == nil {
		return n
	}
	for n.Right() != nil {
		n = n.Right()
	}
	return n
}

// Walk visits every node in ascending key order, stopping early if
// visit returns false. It is a thin convenience over repeated First and
// Next calls, not a distinct algorithm.
func (t *Tree[T, H]) Walk(visit func(H) bool) {
	for n := t.First(); n != nil; n = t.Next(n) {
		if !visit(n) {
			return
		}
	}
}

// Len reports the number of nodes in the tree by walking it; the
// container keeps no running count since it holds no state beyond the
// root link.
func (t *Tree[T, H]) Len() int {
	count := 0
	t.Walk(func(H) bool {
		count++
		return true
	})
	return count
}

// GetMemoryFootprint reports the memory consumed by the tree handle
// itself. Because the container is intrusive and never allocates node
// storage, this does not and cannot account for the caller-owned nodes
// reachable from root — only the caller knows how those are allocated.
func (t *Tree[T, H]) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*t))
}
