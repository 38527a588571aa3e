// Command bstdemo builds binary search trees from the command line and prints
// their traversals.
package main

func main() {
	execute()
}
