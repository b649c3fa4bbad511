package bintree_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/bintree"
)

// ExampleFromPreIn rebuilds a tree from two traversals and walks it in
// postorder.
func ExampleFromPreIn() {
	built, err := bintree.FromPreIn([]int{3, 9, 20, 15, 7}, []int{9, 3, 15, 20, 7})
	if err != nil {
		fmt.Println(err)
		return
	}
	tree := built.Last().Snapshot.Tree

	walk, err := bintree.Traverse(tree, bintree.PostOrder)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(walk.Last().Description)
	// Output:
	// postorder traversal complete: [9 15 7 20 3]
}
