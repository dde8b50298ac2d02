package aatree

// insert0 is the recursive insert rewrite: it returns the (possibly
// rotated) root of the subtree item now belongs to, plus the node that
// item replaced (nil if none). item arrives detached; on return it is
// either a brand-new leaf-position node at level 1, or installed in the
// slot of an equal-key node that it displaced.
func insert0[T any, H Linkable[T]](n, item H, cmp Comparator[T]) (H, H) {
	if n == nil {
		item.SetLevel(1)
		return item, nil
	}

	var replaced H
	switch c := cmp.Compare(item, n); {
	case c < 0:
		newLeft, r := insert0[T, H](n.Left(), item, cmp)
		n.SetLeft(newLeft)
		replaced = r
	case c > 0:
		newRight, r := insert0[T, H](n.Right(), item, cmp)
		n.SetRight(newRight)
		replaced = r
	default:
		item.SetLeft(n.Left())
		item.SetRight(n.Right())
		item.SetLevel(n.Level())
		replaced = n
		n = item
	}

	n = skew[T, H](n)
	n = split[T, H](n)
	return n, replaced
}

// deleteFirst0 descends to the leftmost node of n, splices it out, and
// applies deleteFixup at every ancestor on the way back up.
func deleteFirst0[T any, H Linkable[T]](n H) (H, H) {
	if n == nil {
		return n, nil
	}
	if n.Left() == nil {
		removed := n
		n = n.Right()
		return n, removed
	}
	newLeft, removed := deleteFirst0[T, H](n.Left())
	n.SetLeft(newLeft)
	n = deleteFixup[T, H](n)
	return n, removed
}

// deleteLast0 is the mirror of deleteFirst0 on the right spine.
func deleteLast0[T any, H Linkable[T]](n H) (H, H) {
	if n == nil {
		return n, nil
	}
	if n.Right() == nil {
		removed := n
		n = n.Left()
		return n, removed
	}
	newRight, removed := deleteLast0[T, H](n.Right())
	n.SetRight(newRight)
	n = deleteFixup[T, H](n)
	return n, removed
}

// delete0 is the recursive by-key delete rewrite. When the matching
// node M is found, a replacement is extracted from M's left subtree's
// maximum (or, lacking a left child, M's right subtree's minimum) and
// installed in M's position, inheriting M's links and level — this
// preserves the identity of the node the caller asked to delete (M
// itself comes back detached) rather than returning a copy built from
// its in-order neighbour's payload.
func delete0[T any, H Linkable[T]](n H, probe H, cmp Comparator[T]) (H, H) {
	if n == nil {
		var none H
		return n, none
	}

	switch c := cmp.Compare(probe, n); {
	case c < 0:
		newLeft, removed := delete0[T, H](n.Left(), probe, cmp)
		n.SetLeft(newLeft)
		if removed != nil {
			n = deleteFixup[T, H](n)
		}
		return n, removed
	case c > 0:
		newRight, removed := delete0[T, H](n.Right(), probe, cmp)
		n.SetRight(newRight)
		if removed != nil {
			n = deleteFixup[T, H](n)
		}
		return n, removed
	default:
		removed := n
		if n.Left() == nil && n.Right() == nil {
			var none H
			return none, removed
		}

		var replacement H
		if n.Left() != nil {
			newLeft, x := deleteLast0[T, H](n.Left())
			n.SetLeft(newLeft)
			replacement = x
		} else {
			newRight, x := deleteFirst0[T, H](n.Right())
			n.SetRight(newRight)
			replacement = x
		}

		replacement.SetLeft(n.Left())
		replacement.SetRight(n.Right())
		replacement.SetLevel(n.Level())
		n = deleteFixup[T, H](replacement)
		return n, removed
	}
}
