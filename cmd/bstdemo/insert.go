package main

import (
	"cmp"
	"fmt"
	"iter"
	"strconv"

	"bintree/tree"

	"github.com/goose-lang/primitive"
	"github.com/spf13/cobra"
)

var defaultValues = []string{"7", "10", "2", "1", "5", "9", "3"}

var (
	insertNaive  bool
	insertOrder  string
	insertSearch string
	// set when --search was given, so an empty string can be searched for
	insertSearchSet bool
	insertRender    bool
	insertStrings   bool
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().BoolVar(&insertNaive, "naive", false, "Insert in place instead of copy-on-write")
	cmd.Flags().StringVar(&insertOrder, "order", "in", "Traversal to print: in, pre or post")
	cmd.Flags().StringVar(&insertSearch, "search", "", "Value to search for")
	cmd.Flags().BoolVar(&insertRender, "render", false, "Print the tree structure")
	cmd.Flags().BoolVar(&insertStrings, "strings", false, "Treat values as strings instead of integers")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert [values...]",
		Short: "Insert values into an empty tree and print a traversal",
		Long: `The insert command inserts each value, in order, into an empty tree and
prints the chosen traversal one value per line. Without values it uses
7 10 2 1 5 9 3.

Example:
  bstdemo insert
  bstdemo insert 4 2 6 --order pre
  bstdemo insert 7 10 2 --search 2 --render
  bstdemo insert --strings m c x a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			insertSearchSet = cmd.Flags().Changed("search")
			return runInsert(args)
		},
	}
	return cmd
}

func runInsert(args []string) error {
	if len(args) == 0 {
		args = defaultValues
	}
	if insertStrings {
		var search *string
		if insertSearchSet {
			search = &insertSearch
		}
		return buildAndPrint(args, search)
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}
	var search *int
	if insertSearchSet {
		v, err := strconv.Atoi(insertSearch)
		if err != nil {
			return fmt.Errorf("invalid search value %q: %w", insertSearch, err)
		}
		search = &v
	}
	return buildAndPrint(values, search)
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func traversal[T cmp.Ordered](t tree.Tree[T], order string) (iter.Seq[T], error) {
	switch order {
	case "in":
		return t.InOrder(), nil
	case "pre":
		return t.PreOrder(), nil
	case "post":
		return t.PostOrder(), nil
	}
	return nil, fmt.Errorf("unknown order %q (want in, pre or post)", order)
}

func buildAndPrint[T cmp.Ordered](values []T, search *T) error {
	var t tree.Tree[T]
	for _, v := range values {
		if insertNaive {
			t.NaiveInsert(v)
		} else {
			t.Insert(v)
		}
		logger.Debug("inserted", "value", v, "naive", insertNaive, "count", t.Count())
	}
	primitive.Assert(t.Valid())
	logger.Debug("built tree", "count", t.Count(), "height", t.Height())

	seq, err := traversal(t, insertOrder)
	if err != nil {
		return err
	}
	for v := range seq {
		printInfo("%v\n", v)
	}

	if search != nil {
		if found, ok := t.Search(*search); ok {
			printInfo("found: %s\n", found)
		} else {
			printInfo("not found: %v\n", *search)
		}
	}
	if insertRender {
		printInfo("tree: %s\n", t)
	}
	return nil
}
