package main

import (
	"iter"
	"strings"

	"bintree/tree"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExprCmd())
}

func newExprCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expr",
		Short: "Print the traversals of a hand-built expression tree",
		Long: `The expr command builds the tree for (5 * (a - 10)) * (-4 * (3 / b))
directly from nodes and prints its pre-order (prefix), in-order (infix) and
post-order (postfix) traversals.

The expression tree is not ordered, so it is built with tree.Node rather than
inserted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpr()
		},
	}
}

func expressionTree() tree.Tree[string] {
	empty := tree.Empty[string]()

	// 5 * (a - 10)
	aMinus10 := tree.Node(tree.Leaf("a"), "-", tree.Leaf("10"))
	timesLeft := tree.Node(tree.Leaf("5"), "*", aMinus10)

	// -4 * (3 / b)
	minus4 := tree.Node(empty, "-", tree.Leaf("4"))
	divide3ByB := tree.Node(tree.Leaf("3"), "/", tree.Leaf("b"))
	timesRight := tree.Node(minus4, "*", divide3ByB)

	return tree.Node(timesLeft, "*", timesRight)
}

func joinSeq(seq iter.Seq[string]) string {
	var parts []string
	for s := range seq {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func runExpr() error {
	t := expressionTree()
	logger.Debug("built expression tree", "count", t.Count(), "valid", t.Valid())

	printInfo("prefix:  %s\n", joinSeq(t.PreOrder()))
	printInfo("infix:   %s\n", joinSeq(t.InOrder()))
	printInfo("postfix: %s\n", joinSeq(t.PostOrder()))
	return nil
}
