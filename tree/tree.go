package tree

import (
	"cmp"

	"github.com/goose-lang/std"
)

// Tree is an unbalanced binary search tree over an ordered element type.
//
// A Tree is either Empty (the zero value) or a Node holding a value and two
// subtrees. For every Node, values in the left subtree are strictly less than
// the node's value and values in the right subtree are greater than or equal
// to it; inserting a value equal to an existing one routes it right.
//
// Tree is a small value: copying it copies a handle to the same nodes. Insert
// and Inserted never modify existing nodes, so a copy taken before either one
// keeps observing the old version. NaiveInsert does modify nodes and requires
// that no other copy of the tree is in use.
type Tree[T cmp.Ordered] struct {
	n *node[T]
}

type node[T cmp.Ordered] struct {
	left  Tree[T]
	value T
	right Tree[T]
}

// Empty returns the empty tree, equivalent to the zero value.
func Empty[T cmp.Ordered]() Tree[T] {
	var t Tree[T]
	return t
}

// Node builds a tree rooted at value with the given subtrees.
//
// Node does not check ordering: the caller must ensure every value in left is
// less than value and every value in right is at least value, otherwise Search
// and Contains give unreliable answers.
func Node[T cmp.Ordered](left Tree[T], value T, right Tree[T]) Tree[T] {
	return Tree[T]{n: &node[T]{left: left, value: value, right: right}}
}

// Leaf is shorthand for a Node with two empty subtrees.
func Leaf[T cmp.Ordered](value T) Tree[T] {
	return Node(Empty[T](), value, Empty[T]())
}

// FromValues builds a tree by inserting vs in order into an empty tree.
func FromValues[T cmp.Ordered](vs ...T) Tree[T] {
	var t Tree[T]
	for _, v := range vs {
		t.Insert(v)
	}
	return t
}

// IsEmpty reports whether t is the Empty variant.
func (t Tree[T]) IsEmpty() bool {
	return t.n == nil
}

// Value returns the root value. The boolean is false for an empty tree.
func (t Tree[T]) Value() (T, bool) {
	if t.n == nil {
		var zero T
		return zero, false
	}
	return t.n.value, true
}

// Left returns the left subtree, or the empty tree if t is empty.
func (t Tree[T]) Left() Tree[T] {
	if t.n == nil {
		return t
	}
	return t.n.left
}

// Right returns the right subtree, or the empty tree if t is empty.
func (t Tree[T]) Right() Tree[T] {
	if t.n == nil {
		return t
	}
	return t.n.right
}

// Count returns the number of nodes in t. It walks the whole tree.
func (t Tree[T]) Count() uint64 {
	if t.n == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(std.SumAssumeNoOverflow(t.n.left.Count(), 1), t.n.right.Count())
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t Tree[T]) Height() uint64 {
	if t.n == nil {
		return 0
	}
	return max(t.n.left.Height(), t.n.right.Height()) + 1
}

// Search returns the subtree whose root equals v. The boolean is false (and
// the returned tree empty) if v is not present.
func (t Tree[T]) Search(v T) (Tree[T], bool) {
	if t.n == nil {
		return t, false
	}
	if v == t.n.value {
		return t, true
	}
	if v < t.n.value {
		return t.n.left.Search(v)
	}
	return t.n.right.Search(v)
}

// Contains reports whether v is stored in t.
func (t Tree[T]) Contains(v T) bool {
	_, ok := t.Search(v)
	return ok
}

// Equal reports whether t and other have the same shape and the same value at
// every position.
func (t Tree[T]) Equal(other Tree[T]) bool {
	if t.n == other.n {
		return true
	}
	if t.n == nil || other.n == nil {
		return false
	}
	return t.n.value == other.n.value &&
		t.n.left.Equal(other.n.left) &&
		t.n.right.Equal(other.n.right)
}
