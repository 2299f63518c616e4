package avl

import (
	"errors"
)

var (
	ErrElementNotFound  = errors.New("Element is not in the tree")
	ErrIllegalOperation = errors.New("Iterator cannot move past the tree bounds")
)

type (
	// Tree is a height-balanced binary search tree holding elements of
	// type T. A zero Tree is not usable, create one with New or NewFunc.
	Tree[T any] struct {
		root  *node[T]
		cmp   func(a, b T) int
		count int
	}

	// Iterator is a cursor over the elements of a single Tree in sorted
	// order. A nil node marks the end sentinel, one past the last
	// element. Iterators are comparable: two iterators are equal iff
	// they reference the same node of the same tree.
	Iterator[T any] struct {
		tree *Tree[T]
		node *node[T]
	}

	// balance is height(right) - height(left), kept in {-1, 0, +1}.
	// up is a plain back reference, ownership runs strictly downwards.
	node[T any] struct {
		left    *node[T]
		right   *node[T]
		up      *node[T]
		value   T
		balance int
	}

	Callback[T any] func(value T) bool
)
