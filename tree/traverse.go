package tree

import "iter"

// TraverseInOrder calls process on every value: the left subtree, then the
// root, then the right subtree. For a valid tree this visits values in
// non-decreasing order.
func (t Tree[T]) TraverseInOrder(process func(T)) {
	if t.n == nil {
		return
	}
	t.n.left.TraverseInOrder(process)
	process(t.n.value)
	t.n.right.TraverseInOrder(process)
}

// TraversePreOrder calls process on the root before either subtree.
func (t Tree[T]) TraversePreOrder(process func(T)) {
	if t.n == nil {
		return
	}
	process(t.n.value)
	t.n.left.TraversePreOrder(process)
	t.n.right.TraversePreOrder(process)
}

// TraversePostOrder calls process on both subtrees before the root.
func (t Tree[T]) TraversePostOrder(process func(T)) {
	if t.n == nil {
		return
	}
	t.n.left.TraversePostOrder(process)
	t.n.right.TraversePostOrder(process)
	process(t.n.value)
}

// The yield helpers return false once the consumer stops, which ends the walk.

func (t Tree[T]) inOrder(yield func(T) bool) bool {
	if t.n == nil {
		return true
	}
	return t.n.left.inOrder(yield) && yield(t.n.value) && t.n.right.inOrder(yield)
}

func (t Tree[T]) preOrder(yield func(T) bool) bool {
	if t.n == nil {
		return true
	}
	return yield(t.n.value) && t.n.left.preOrder(yield) && t.n.right.preOrder(yield)
}

func (t Tree[T]) postOrder(yield func(T) bool) bool {
	if t.n == nil {
		return true
	}
	return t.n.left.postOrder(yield) && t.n.right.postOrder(yield) && yield(t.n.value)
}

// InOrder returns an iterator over the same sequence as TraverseInOrder.
func (t Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.inOrder(yield)
	}
}

// PreOrder returns an iterator over the same sequence as TraversePreOrder.
func (t Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.preOrder(yield)
	}
}

// PostOrder returns an iterator over the same sequence as TraversePostOrder.
func (t Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.postOrder(yield)
	}
}
