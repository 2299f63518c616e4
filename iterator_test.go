package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorEmptyTree(t *testing.T) {
	tree := New[int]()
	assert.True(t, tree.Begin() == tree.End())

	it := tree.End()
	assert.Equal(t, ErrIllegalOperation, it.Next())
	assert.Equal(t, ErrIllegalOperation, it.Prev())

	_, err := it.Value()
	assert.Equal(t, ErrElementNotFound, err)

	_, err = it.Ref()
	assert.Equal(t, ErrElementNotFound, err)
}

func TestIteratorForward(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{3, 1, 4, 5, 2} {
		tree.Insert(v)
	}

	got := []int{}
	for it := tree.Begin(); it != tree.End(); {
		v, err := it.Value()
		assert.NoError(t, err)
		got = append(got, v)
		assert.NoError(t, it.Next())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	it := tree.End()
	assert.Equal(t, ErrIllegalOperation, it.Next())
	assert.True(t, it == tree.End(), "failed step must not move the iterator")
}

func TestIteratorBackward(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{3, 1, 4, 5, 2} {
		tree.Insert(v)
	}

	// stepping back from the end sentinel lands on the last element
	it := tree.End()
	got := []int{}
	for it.Prev() == nil {
		v, err := it.Value()
		assert.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)

	// the failed Prev left the iterator on the first element
	assert.True(t, it == tree.Begin())
	assert.Equal(t, ErrIllegalOperation, it.Prev())
	v, err := it.Value()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestIteratorEquality(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for _, v := range []int{1, 2, 3} {
		a.Insert(v)
		b.Insert(v)
	}

	assert.True(t, a.Begin() == a.Begin())
	assert.True(t, a.End() == a.End())
	assert.True(t, a.Begin() != a.End())

	// same position, same values, different tree identity
	assert.True(t, a.Begin() != b.Begin())
	assert.True(t, a.End() != b.End())

	it := a.Begin()
	assert.NoError(t, it.Next())
	assert.True(t, it != a.Begin())
	assert.True(t, it == a.Find(func(value int) bool { return value == 2 }))
}

func TestIteratorRef(t *testing.T) {
	tree := NewFunc(byKey)
	tree.Insert(entry{2, "b"})
	tree.Insert(entry{1, "a"})
	tree.Insert(entry{3, "c"})

	it := tree.Search(entry{key: 2})
	ref, err := it.Ref()
	assert.NoError(t, err)

	// mutating the non-ordering part in place is fine
	ref.tag = "B"
	assert.Equal(t, []entry{{1, "a"}, {2, "B"}, {3, "c"}}, elements(tree))
	checkStructure(t, tree)
}

func TestIteratorSurvivesUnrelatedMutation(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(v)
	}

	it := tree.Search(20)

	tree.Insert(5)
	assert.NoError(t, tree.Remove(tree.Search(30)))

	v, err := it.Value()
	assert.NoError(t, err)
	assert.Equal(t, 20, v)

	back := it
	assert.NoError(t, back.Prev())
	v, err = back.Value()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)

	assert.NoError(t, it.Next())
	assert.True(t, it == tree.End())
}
