package aatree

import (
	"fmt"

	"github.com/fantom-foundation-labs/aatree/internal/common"
)

// Sentinel errors returned (wrapped) by Validate. Callers can test for
// a specific invariant with errors.Is.
const (
	ErrBadLeafLevel               = common.ConstError("aatree: leaf has level other than 1")
	ErrBadLeftLevel               = common.ConstError("aatree: left child level is not parent level minus one")
	ErrBadRightLevel              = common.ConstError("aatree: right child level is not parent or parent-minus-one")
	ErrConsecutiveRightHorizontal = common.ConstError("aatree: two consecutive right-horizontal links")
	ErrMissingChild               = common.ConstError("aatree: level above 1 requires both children")
	ErrOutOfOrder                 = common.ConstError("aatree: in-order traversal is not strictly increasing")
)

// Validate walks the tree and checks every invariant from the
// container's data model:
//
//  1. every leaf has level 1;
//  2. a left child is exactly one level below its parent;
//  3. a right child is at its parent's level or one below;
//  4. no right-grandchild shares its grandparent's level;
//  5. a node at level > 1 has both children;
//  6. in-order traversal is strictly increasing.
//
// It returns the first violation found, wrapped with the levels of the
// nodes involved, or nil if the tree is well-formed. Validate does
// not mutate any node; it exists for tests and debug assertions, not
// for the hot path of any mutating operation.
func (t *Tree[T, H]) Validate() error {
	visited := 0
	var last H
	return t.validate(t.root, &visited, &last)
}

func (t *Tree[T, H]) validate(n H, visited *int, last *H) error {
	if n == nil {
		return nil
	}

	if err := t.validate(n.Left(), visited, last); err != nil {
		return err
	}

	// The ordering guard activates only after the first node has been
	// visited, tracked by a counter rather than by the key itself — an
	// all-negative-key tree must still validate correctly.
	if *visited > 0 && t.cmp.Compare(*last, n) >= 0 {
		return fmt.Errorf("%w: at node with level %d", ErrOutOfOrder, n.Level())
	}
	*visited++
	*last = n

	l, r := H(n.Left()), H(n.Right())

	if l == nil && r == nil {
		if n.Level() != 1 {
			return fmt.Errorf("%w: level %d", ErrBadLeafLevel, n.Level())
		}
	}

	if l != nil && l.Level() != n.Level()-1 {
		return fmt.Errorf("%w: parent level %d, left level %d", ErrBadLeftLevel, n.Level(), l.Level())
	}

	if r != nil {
		if r.Level() != n.Level() && r.Level() != n.Level()-1 {
			return fmt.Errorf("%w: parent level %d, right level %d", ErrBadRightLevel, n.Level(), r.Level())
		}
		if rr := H(r.Right()); rr != nil && rr.Level() == n.Level() {
			return fmt.Errorf("%w: at level %d", ErrConsecutiveRightHorizontal, n.Level())
		}
	}

	if n.Level() > 1 && (l == nil || r == nil) {
		return fmt.Errorf("%w: level %d", ErrMissingChild, n.Level())
	}

	return t.validate(n.Right(), visited, last)
}
