package tree

// NaiveInsert adds v by filling the nearest empty slot: values less than a
// node's value go left, everything else (including ties) goes right.
//
// Each node on the search path is copied and the copy is written back into
// the receiver, so other trees that share those nodes are left unchanged.
func (t *Tree[T]) NaiveInsert(v T) {
	if t.n == nil {
		*t = Leaf(v)
		return
	}
	n := *t.n
	if v < n.value {
		n.left.NaiveInsert(v)
	} else {
		n.right.NaiveInsert(v)
	}
	t.n = &n
}

// Inserted returns a new tree with v added, leaving t unchanged. Only the path
// from the root to the new leaf is rebuilt; all other subtrees are shared with
// t.
func (t Tree[T]) Inserted(v T) Tree[T] {
	if t.n == nil {
		return Leaf(v)
	}
	if v < t.n.value {
		return Node(t.n.left.Inserted(v), t.n.value, t.n.right)
	}
	return Node(t.n.left, t.n.value, t.n.right.Inserted(v))
}

// Insert replaces t with t.Inserted(v). Copies of t taken before the call
// still see the old tree.
func (t *Tree[T]) Insert(v T) {
	*t = t.Inserted(v)
}
