package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	// Create a new search tree
	var tree Tree[uint64]

	// Insert some keys into the tree
	tree.Insert(3)
	tree.Insert(7)
	tree.Insert(2)
	tree.Insert(4)
	tree.Insert(6)
	tree.Insert(8)

	// Check if the keys are present in the tree
	for _, k := range []uint64{3, 7, 2, 4, 6, 8} {
		assert.True(tree.Contains(k), "Tree should contain key %d", k)
	}

	// Check if some non-existent keys are not present in the tree
	assert.False(tree.Contains(1), "Tree should not contain key 1")
	assert.False(tree.Contains(9), "Tree should not contain key 9")
}

func TestInsertedSharesUntouchedSubtrees(t *testing.T) {
	assert := assert.New(t)

	old := FromValues(7, 2, 10)
	updated := old.Inserted(1)

	assert.NotSame(old.n, updated.n, "root is rebuilt")
	assert.NotSame(old.n.left.n, updated.n.left.n, "path to new leaf is rebuilt")
	assert.Same(old.n.right.n, updated.n.right.n, "right subtree is shared")
	assert.True(old.n.left.n.left.IsEmpty(), "old version is not modified")
}

func TestNaiveInsertLeavesCopiesAlone(t *testing.T) {
	assert := assert.New(t)

	tree := FromValues(7, 2)
	alias := tree
	tree.NaiveInsert(1)
	assert.NotSame(tree.n, alias.n)
	assert.Equal(uint64(2), alias.Count())
	assert.True(alias.n.left.n.left.IsEmpty())
	assert.Equal(uint64(3), tree.Count())
}

func TestNaiveInsertAfterInsertedLeavesOldVersion(t *testing.T) {
	assert := assert.New(t)

	old := FromValues(7, 2, 10)
	next := old.Inserted(1)
	next.NaiveInsert(20)

	assert.Equal(uint64(3), old.Count())
	assert.False(old.Contains(20))
	assert.True(old.n.right.n.right.IsEmpty(), "shared node 10 is not written")
	assert.Equal(uint64(5), next.Count())
	assert.True(next.Contains(20))
	// the path through node 10 was copied for next
	assert.NotSame(old.n.right.n, next.n.right.n)
}

func TestNaiveInsertIntoEmptyRoot(t *testing.T) {
	var tree Tree[int]
	tree.NaiveInsert(4)
	assert.NotNil(t, tree.n)
	assert.Equal(t, 4, tree.n.value)
	assert.True(t, tree.n.left.IsEmpty())
	assert.True(t, tree.n.right.IsEmpty())
}

func TestBoundsAdmits(t *testing.T) {
	assert := assert.New(t)

	b := bounds[int]{lo: 2, hasLo: true, hi: 5, hasHi: true}
	assert.False(b.admits(1))
	assert.True(b.admits(2), "lower bound is inclusive")
	assert.True(b.admits(4))
	assert.False(b.admits(5), "upper bound is exclusive")

	assert.True(bounds[int]{}.admits(-100))
}
