package tree

import "cmp"

// bounds constrains the values allowed in a subtree: lo <= v < hi, where a
// missing bound is unconstrained.
type bounds[T cmp.Ordered] struct {
	lo, hi       T
	hasLo, hasHi bool
}

func (b bounds[T]) admits(v T) bool {
	if b.hasLo && v < b.lo {
		return false
	}
	if b.hasHi && !(v < b.hi) {
		return false
	}
	return true
}

// Valid reports whether t satisfies the search tree ordering, checking every
// value against all of its ancestors and not just its parent. Trees built only
// with Insert, Inserted and NaiveInsert are always valid; Node can build
// invalid ones.
func (t Tree[T]) Valid() bool {
	return t.validWithin(bounds[T]{})
}

func (t Tree[T]) validWithin(b bounds[T]) bool {
	if t.n == nil {
		return true
	}
	v := t.n.value
	if !b.admits(v) {
		return false
	}
	left := b
	left.hi, left.hasHi = v, true
	right := b
	right.lo, right.hasLo = v, true
	return t.n.left.validWithin(left) && t.n.right.validWithin(right)
}
