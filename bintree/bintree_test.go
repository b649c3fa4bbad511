package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/bintree"
	"github.com/katalvlaran/algotrace/trace"
)

// sample is the tree
//
//	    3
//	   / \
//	  9   20
//	     /  \
//	    15   7
var sampleSlots = []bintree.Slot{
	bintree.V(3), bintree.V(9), bintree.V(20), bintree.Null, bintree.Null, bintree.V(15), bintree.V(7),
}

func build(t *testing.T, tr *trace.Trace[bintree.BuildState], err error) bintree.Tree {
	t.Helper()
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	return tr.Last().Snapshot.Tree
}

func walk(t *testing.T, tree bintree.Tree, o bintree.Order) []int {
	t.Helper()
	tr, err := bintree.Traverse(tree, o)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	return tr.Last().Snapshot.VisitedValues()
}

func TestFromLevelOrder_Steps(t *testing.T) {
	tr, err := bintree.FromLevelOrder(sampleSlots)
	tree := build(t, tr, err)

	assert.Equal(t, []string{
		"build from level order [3 9 20 null null 15 7]",
		"create node 0 with value 3 (root from slot 0)",
		"create node 1 with value 9 (slot 1)",
		"attach node 1 (value 9) as left child of node 0 (value 3)",
		"create node 2 with value 20 (slot 2)",
		"attach node 2 (value 20) as right child of node 0 (value 3)",
		"slot 3 is null: node 1 has no left child",
		"slot 4 is null: node 1 has no right child",
		"create node 3 with value 15 (slot 5)",
		"attach node 3 (value 15) as left child of node 2 (value 20)",
		"create node 4 with value 7 (slot 6)",
		"attach node 4 (value 7) as right child of node 2 (value 20)",
		"tree built: 5 nodes, height 3, root value 3",
	}, tr.Descriptions())

	assert.Equal(t, 5, tree.Len())
	assert.Empty(t, tr.First().Snapshot.Tree.Nodes, "step 0 holds no nodes")
}

func TestTraverse_AllOrders(t *testing.T) {
	tr, err := bintree.FromLevelOrder(sampleSlots)
	tree := build(t, tr, err)

	assert.Equal(t, []int{3, 9, 20, 15, 7}, walk(t, tree, bintree.PreOrder))
	assert.Equal(t, []int{9, 3, 15, 20, 7}, walk(t, tree, bintree.InOrder))
	assert.Equal(t, []int{9, 15, 7, 20, 3}, walk(t, tree, bintree.PostOrder))
	assert.Equal(t, []int{3, 9, 20, 15, 7}, walk(t, tree, bintree.LevelOrder))
}

func TestFromTraversalPairs(t *testing.T) {
	pre := []int{3, 9, 20, 15, 7}
	in := []int{9, 3, 15, 20, 7}
	post := []int{9, 15, 7, 20, 3}

	tr, err := bintree.FromPreIn(pre, in)
	a := build(t, tr, err)
	assert.Equal(t, post, walk(t, a, bintree.PostOrder))

	tr, err = bintree.FromInPost(in, post)
	b := build(t, tr, err)
	assert.Equal(t, pre, walk(t, b, bintree.PreOrder))
	assert.Equal(t, in, walk(t, b, bintree.InOrder))
}

func TestFromPreIn_Steps(t *testing.T) {
	tr, err := bintree.FromPreIn([]int{1, 2}, []int{2, 1})
	build(t, tr, err)

	assert.Equal(t, []string{
		"build from preorder [1 2] and inorder [2 1]",
		"index inorder positions once: [2→0 1→1]",
		"preorder[0]=1 is the root of inorder[0..1]; it sits at inorder 1: left part [0..0], right part empty",
		"create node 0 with value 1 (preorder[0])",
		"preorder[1]=2 is the root of inorder[0..0]; it sits at inorder 0: left part empty, right part empty",
		"create node 1 with value 2 (preorder[1])",
		"attach node 1 (value 2) as left child of node 0 (value 1)",
		"tree built: 2 nodes, height 2, root value 1",
	}, tr.Descriptions())
}

func TestFromSorted(t *testing.T) {
	tr, err := bintree.FromSorted([]int{1, 2, 3})
	tree := build(t, tr, err)

	assert.Equal(t, []string{
		"build a balanced BST from sorted [1 2 3]",
		"range [0..2]: middle index 1, value 2 becomes the subtree root",
		"create node 0 with value 2 (values[1])",
		"range [0..0]: middle index 0, value 1 becomes the subtree root",
		"create node 1 with value 1 (values[0])",
		"attach node 1 (value 1) as left child of node 0 (value 2)",
		"range [2..2]: middle index 2, value 3 becomes the subtree root",
		"create node 2 with value 3 (values[2])",
		"attach node 2 (value 3) as right child of node 0 (value 2)",
		"tree built: 3 nodes, height 2, root value 2",
	}, tr.Descriptions())

	tr, err = bintree.FromSorted([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	big := build(t, tr, err)
	assert.Equal(t, 4, big.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, walk(t, big, bintree.InOrder))
	assert.Equal(t, 3, tree.Len())
}

func TestTraverse_PreOrderSteps(t *testing.T) {
	tr, err := bintree.FromSorted([]int{1, 2, 3})
	tree := build(t, tr, err)

	w, err := bintree.Traverse(tree, bintree.PreOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"preorder traversal: start at root node 0 (value 2)",
		"visit node 0 (value 2) at depth 0: order so far [2]",
		"descend left from node 0 (value 2) to node 1 (value 1) at depth 1",
		"visit node 1 (value 1) at depth 1: order so far [2 1]",
		"return from node 1 (value 1) at depth 1 to node 0",
		"descend right from node 0 (value 2) to node 2 (value 3) at depth 1",
		"visit node 2 (value 3) at depth 1: order so far [2 1 3]",
		"return from node 2 (value 3) at depth 1 to node 0",
		"return from node 0 (value 2) at depth 0",
		"preorder traversal complete: [2 1 3]",
	}, w.Descriptions())
}

func TestTraverse_LevelOrderSteps(t *testing.T) {
	tr, err := bintree.FromSorted([]int{1, 2, 3})
	tree := build(t, tr, err)

	w, err := bintree.Traverse(tree, bintree.LevelOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"level-order traversal: start at root node 0 (value 2)",
		"visit node 0 (value 2) at level 0: order so far [2]",
		"enqueue left child node 1 (value 1) of node 0 at level 1: queue [1]",
		"enqueue right child node 2 (value 3) of node 0 at level 1: queue [1 3]",
		"visit node 1 (value 1) at level 1: order so far [2 1]",
		"visit node 2 (value 3) at level 1: order so far [2 1 3]",
		"level-order traversal complete: [2 1 3]",
	}, w.Descriptions())
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"empty level order", func() error { _, err := bintree.FromLevelOrder(nil); return err }, bintree.ErrEmptyInput},
		{"null root", func() error {
			_, err := bintree.FromLevelOrder([]bintree.Slot{bintree.Null, bintree.V(1)})
			return err
		}, bintree.ErrNullRoot},
		{"dangling slot", func() error {
			_, err := bintree.FromLevelOrder([]bintree.Slot{bintree.V(1), bintree.Null, bintree.Null, bintree.V(5)})
			return err
		}, bintree.ErrDanglingSlot},
		{"length mismatch", func() error { _, err := bintree.FromPreIn([]int{1}, []int{1, 2}); return err }, bintree.ErrLengthMismatch},
		{"duplicates", func() error { _, err := bintree.FromPreIn([]int{1, 1}, []int{1, 1}); return err }, bintree.ErrDuplicateValue},
		{"different sets", func() error { _, err := bintree.FromInPost([]int{1, 2}, []int{1, 3}); return err }, bintree.ErrMismatchedSets},
		{"inconsistent pre/in", func() error {
			_, err := bintree.FromPreIn([]int{1, 3, 2}, []int{2, 1, 3})
			return err
		}, bintree.ErrInconsistentTraversals},
		{"inconsistent in/post", func() error {
			_, err := bintree.FromInPost([]int{2, 1, 3}, []int{3, 2, 1})
			return err
		}, bintree.ErrInconsistentTraversals},
		{"unsorted", func() error { _, err := bintree.FromSorted([]int{2, 1}); return err }, bintree.ErrNotSorted},
		{"empty sorted", func() error { _, err := bintree.FromSorted(nil); return err }, bintree.ErrEmptyInput},
		{"empty tree", func() error {
			_, err := bintree.Traverse(bintree.Tree{Root: bintree.None}, bintree.InOrder)
			return err
		}, bintree.ErrEmptyTree},
		{"cycle", func() error {
			tree := bintree.Tree{Root: 0, Nodes: []bintree.Node{
				{ID: 0, Value: 1, Left: 1, Right: bintree.None},
				{ID: 1, Value: 2, Left: 0, Right: bintree.None},
			}}
			_, err := bintree.Traverse(tree, bintree.PreOrder)
			return err
		}, bintree.ErrMalformedTree},
		{"unknown order", func() error {
			_, err := bintree.Traverse(bintree.Tree{Root: 0, Nodes: []bintree.Node{{Left: bintree.None, Right: bintree.None}}}, bintree.Order(9))
			return err
		}, bintree.ErrUnknownOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, trace.IsInvalidInput(err))
		})
	}
}

func TestTraverse_DoesNotAliasInput(t *testing.T) {
	tr, err := bintree.FromSorted([]int{1, 2, 3})
	tree := build(t, tr, err)

	w, err := bintree.Traverse(tree, bintree.InOrder)
	require.NoError(t, err)
	tree.Nodes[0].Value = 99
	assert.Equal(t, 2, w.First().Snapshot.Tree.Nodes[0].Value)
	assert.Equal(t, "inorder", bintree.InOrder.String())
}
