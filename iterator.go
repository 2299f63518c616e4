package avl

// Next advances the iterator to the in-order successor. Advancing the
// end sentinel returns ErrIllegalOperation and leaves the iterator
// where it is.
func (it *Iterator[T]) Next() error {
	if it.node == nil {
		return ErrIllegalOperation
	}
	it.node = it.node.next()
	return nil
}

// Prev moves the iterator to the in-order predecessor. Stepping back
// from the end sentinel lands on the last element, stepping back from
// the first element returns ErrIllegalOperation and leaves the
// iterator where it is.
func (it *Iterator[T]) Prev() error {
	if it.node == nil {
		if it.tree == nil {
			return ErrIllegalOperation
		}
		last := it.tree.root.rightmost()
		if last == nil {
			return ErrIllegalOperation
		}
		it.node = last
		return nil
	}
	p := it.node.prev()
	if p == nil {
		return ErrIllegalOperation
	}
	it.node = p
	return nil
}

// Value returns the element the iterator references, or
// ErrElementNotFound at the end sentinel.
func (it Iterator[T]) Value() (T, error) {
	if it.node == nil {
		var zero T
		return zero, ErrElementNotFound
	}
	return it.node.value, nil
}

// Ref returns a pointer to the stored element so the caller can mutate
// it in place. The mutation must not change how the element compares
// relative to its neighbours, the tree does not re-validate the order.
func (it Iterator[T]) Ref() (*T, error) {
	if it.node == nil {
		return nil, ErrElementNotFound
	}
	return &it.node.value, nil
}
