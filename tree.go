package avl

import (
	"fmt"
	"strings"
)

// Len returns the number of elements currently in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Insert adds a copy of value at its sorted position. Equal elements
// are treated as "not less" and descend into the right subtree, so
// duplicates keep their insertion order under in-order traversal.
func (t *Tree[T]) Insert(value T) {
	n := &node[T]{value: value}
	t.count++
	if t.root == nil {
		t.root = n
		return
	}

	p := t.root
	for {
		if t.cmp(value, p.value) < 0 {
			if p.left == nil {
				p.left = n
				break
			}
			p = p.left
		} else {
			if p.right == nil {
				p.right = n
				break
			}
			p = p.right
		}
	}
	n.up = p

	// retrace towards the root, a single rotation restores every
	// ancestor after one insertion so the first rotation stops the walk
	child := n
	for q := n.up; q != nil; q = child.up {
		up := q.up
		wasLeft := up != nil && up.left == q

		var r *node[T]
		var grew bool
		if q.left == child {
			r, grew = q.growLeft()
		} else {
			r, grew = q.growRight()
		}
		t.relink(r, up, wasLeft)
		if !grew {
			return
		}
		child = r
	}
}

// Remove unlinks and releases the element the iterator references. It
// returns ErrElementNotFound if the tree is empty, the iterator was
// produced by another tree or it is the end sentinel. The iterator,
// and any other iterator referencing the same element, is invalid
// afterwards, iterators on untouched elements stay valid.
func (t *Tree[T]) Remove(it Iterator[T]) error {
	if t.root == nil || it.tree != t || it.node == nil {
		return ErrElementNotFound
	}

	q := it.node
	if q.left != nil && q.right != nil {
		// interior node: swap values with the in-order successor, which
		// has at most one child, and splice that node out instead
		s := q.right.leftmost()
		q.swap(s)
		q = s
	}

	c := q.left
	if c == nil {
		c = q.right
	}
	up := q.up
	wasLeft := up != nil && up.left == q
	if c != nil {
		c.up = up
	}
	t.relink(c, up, wasLeft)
	t.count--

	// retrace to the root, removal can shorten a subtree and push the
	// imbalance past the immediate parent
	p := q.up
	fromLeft := wasLeft
	for p != nil {
		pup := p.up
		pWasLeft := pup != nil && pup.left == p

		var r *node[T]
		var shrunk bool
		if fromLeft {
			r, shrunk = p.shrinkLeft()
		} else {
			r, shrunk = p.shrinkRight()
		}
		t.relink(r, pup, pWasLeft)
		if !shrunk {
			return nil
		}
		p = pup
		fromLeft = pWasLeft
	}
	return nil
}

// relink hangs the subtree root r below up, or makes it the tree root.
func (t *Tree[T]) relink(r *node[T], up *node[T], asLeft bool) {
	if up == nil {
		t.root = r
	} else if asLeft {
		up.left = r
	} else {
		up.right = r
	}
}

// Find walks the elements in sorted order and returns an iterator to
// the first one the predicate accepts, or the end sentinel if none do.
func (t *Tree[T]) Find(predicate func(value T) bool) Iterator[T] {
	for n := t.root.leftmost(); n != nil; n = n.next() {
		if predicate(n.value) {
			return Iterator[T]{tree: t, node: n}
		}
	}
	return t.End()
}

// Search descends by comparison and returns an iterator to the first
// element in sorted order that compares equal to value, or the end
// sentinel if there is none.
func (t *Tree[T]) Search(value T) Iterator[T] {
	var found *node[T]
	for n := t.root; n != nil; {
		c := t.cmp(n.value, value)
		if c < 0 {
			n = n.right
		} else {
			if c == 0 {
				found = n
			}
			n = n.left
		}
	}
	if found == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, node: found}
}

// Each calls fn for every element in sorted order until fn returns
// false. fn must not mutate the tree.
func (t *Tree[T]) Each(fn Callback[T]) {
	for n := t.root.leftmost(); n != nil; n = n.next() {
		if !fn(n.value) {
			return
		}
	}
}

// Begin returns an iterator to the smallest element, or the end
// sentinel for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{tree: t, node: t.root.leftmost()}
}

// End returns the end sentinel of this tree, one past the last
// element. It is never dereferenceable.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

// Clone returns a deep copy: new nodes with the same values, shape and
// balance state, sharing nothing with the receiver.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  t.root.clone(nil),
		cmp:   t.cmp,
		count: t.count,
	}
}

// CopyFrom discards the receiver's elements and deep copies src into
// it, ordering function included. Copying a tree into itself is a
// no-op.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.root = src.root.clone(nil)
	t.cmp = src.cmp
	t.count = src.count
}

// Clear releases every element, leaving an empty tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// String renders the elements in sorted order, for debugging.
func (t *Tree[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	t.Each(func(value T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", value)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
