package tree

import (
	"fmt"
	"strings"
)

// String renders t for debugging. An empty tree renders as "" and a node as
//
//	value: <value>, left = [<left>], right = [<right>]
//
// The format is not meant to be parsed back.
func (t Tree[T]) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t Tree[T]) render(b *strings.Builder) {
	if t.n == nil {
		return
	}
	fmt.Fprintf(b, "value: %v, left = [", t.n.value)
	t.n.left.render(b)
	b.WriteString("], right = [")
	t.n.right.render(b)
	b.WriteString("]")
}
