package avl

import "cmp"

// New creates an empty tree ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by the given comparison
// function. compare must return a negative number if a sorts before b,
// a positive number if a sorts after b and zero otherwise. Equal
// elements are kept in insertion order.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: compare}
}
