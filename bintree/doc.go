// Package bintree traces binary-tree construction and traversal.
//
// Trees are arena based: Tree.Nodes holds every node and children are
// referenced by position, so cloning a snapshot is a slice copy. Node IDs
// equal their position and are assigned in creation order; None marks an
// absent child or an empty root.
//
// Builders (each returns *trace.Trace[BuildState]):
//
//	FromLevelOrder  level-order slots with null markers
//	FromPreIn       preorder + inorder
//	FromInPost      inorder + postorder
//	FromSorted      sorted values → height-balanced BST (middle element as root)
//
// Every builder records one step per node creation and one per attachment.
// The traversal-pair builders build the value→inorder-position index once
// and record each recursion split over the inorder range.
//
// Traverse walks a tree in PreOrder, InOrder, PostOrder or LevelOrder and
// records descend-left / visit / descend-right / return steps with depth
// for the depth-first orders, visit / enqueue-child steps with level for
// level order.
//
// All input errors are marked trace.ErrInvalidInput.
package bintree
