package avl

// leftmost returns the first node of the subtree in sorted order.
func (p *node[T]) leftmost() *node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// rightmost returns the last node of the subtree in sorted order.
func (p *node[T]) rightmost() *node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// next returns the in-order successor, nil after the last node.
func (p *node[T]) next() *node[T] {
	if p.right != nil {
		return p.right.leftmost()
	}
	for p.up != nil && p == p.up.right {
		p = p.up
	}
	return p.up
}

// prev returns the in-order predecessor, nil before the first node.
func (p *node[T]) prev() *node[T] {
	if p.left != nil {
		return p.left.rightmost()
	}
	for p.up != nil && p == p.up.left {
		p = p.up
	}
	return p.up
}

// swap exchanges the stored values of two nodes, the tree shape and
// all links stay untouched.
func (p *node[T]) swap(o *node[T]) {
	p.value, o.value = o.value, p.value
}

// clone deep copies the subtree, attaching the copy below up.
func (p *node[T]) clone(up *node[T]) *node[T] {
	if p == nil {
		return nil
	}
	n := &node[T]{value: p.value, balance: p.balance, up: up}
	n.left = p.left.clone(n)
	n.right = p.right.clone(n)
	return n
}

// The four rotations are pure structural transforms: they rearrange
// child and parent links and return the new subtree root, balance
// bookkeeping is left to the grow/shrink steps below. The caller must
// relink the returned root into the old root's parent.

func (p *node[T]) rotateLeft() *node[T] {
	p1 := p.right
	p.right = p1.left
	if p.right != nil {
		p.right.up = p
	}
	p1.left = p
	p1.up = p.up
	p.up = p1
	return p1
}

func (p *node[T]) rotateRight() *node[T] {
	p1 := p.left
	p.left = p1.right
	if p.left != nil {
		p.left.up = p
	}
	p1.right = p
	p1.up = p.up
	p.up = p1
	return p1
}

func (p *node[T]) rotateLeftRight() *node[T] {
	p.left = p.left.rotateLeft()
	return p.rotateRight()
}

func (p *node[T]) rotateRightLeft() *node[T] {
	p.right = p.right.rotateRight()
	return p.rotateLeft()
}

// growLeft rebalances p after its left subtree grew one level. It
// returns the new subtree root and whether the subtree as a whole is
// now taller, so the caller knows to keep retracing.
func (p *node[T]) growLeft() (*node[T], bool) {
	switch p.balance {
	case 1:
		p.balance = 0
		return p, false
	case 0:
		p.balance = -1
		return p, true
	}
	p1 := p.left
	if p1.balance == -1 {
		// single LL rotation
		r := p.rotateRight()
		p.balance = 0
		p1.balance = 0
		return r, false
	}
	// double LR rotation
	p2 := p1.right
	b := p2.balance
	r := p.rotateLeftRight()
	p.balance = 0
	p1.balance = 0
	if b == -1 {
		p.balance = 1
	} else if b == 1 {
		p1.balance = -1
	}
	r.balance = 0
	return r, false
}

// growRight is the mirror of growLeft.
func (p *node[T]) growRight() (*node[T], bool) {
	switch p.balance {
	case -1:
		p.balance = 0
		return p, false
	case 0:
		p.balance = 1
		return p, true
	}
	p1 := p.right
	if p1.balance == 1 {
		// single RR rotation
		r := p.rotateLeft()
		p.balance = 0
		p1.balance = 0
		return r, false
	}
	// double RL rotation
	p2 := p1.left
	b := p2.balance
	r := p.rotateRightLeft()
	p.balance = 0
	p1.balance = 0
	if b == 1 {
		p.balance = -1
	} else if b == -1 {
		p1.balance = 1
	}
	r.balance = 0
	return r, false
}

// shrinkLeft rebalances p after its left subtree shrank one level. It
// returns the new subtree root and whether the subtree as a whole got
// shorter, unlike insertion the shrinking can propagate all the way up.
func (p *node[T]) shrinkLeft() (*node[T], bool) {
	switch p.balance {
	case -1:
		p.balance = 0
		return p, true
	case 0:
		p.balance = 1
		return p, false
	}
	p1 := p.right
	if p1.balance >= 0 {
		// single RR rotation
		r := p.rotateLeft()
		if p1.balance == 0 {
			p.balance = 1
			p1.balance = -1
			return r, false
		}
		p.balance = 0
		p1.balance = 0
		return r, true
	}
	// double RL rotation
	p2 := p1.left
	b := p2.balance
	r := p.rotateRightLeft()
	p.balance = 0
	p1.balance = 0
	if b == 1 {
		p.balance = -1
	} else if b == -1 {
		p1.balance = 1
	}
	r.balance = 0
	return r, true
}

// shrinkRight is the mirror of shrinkLeft.
func (p *node[T]) shrinkRight() (*node[T], bool) {
	switch p.balance {
	case 1:
		p.balance = 0
		return p, true
	case 0:
		p.balance = -1
		return p, false
	}
	p1 := p.left
	if p1.balance <= 0 {
		// single LL rotation
		r := p.rotateRight()
		if p1.balance == 0 {
			p.balance = -1
			p1.balance = 1
			return r, false
		}
		p.balance = 0
		p1.balance = 0
		return r, true
	}
	// double LR rotation
	p2 := p1.right
	b := p2.balance
	r := p.rotateLeftRight()
	p.balance = 0
	p1.balance = 0
	if b == -1 {
		p.balance = 1
	} else if b == 1 {
		p1.balance = -1
	}
	r.balance = 0
	return r, true
}
