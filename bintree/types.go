package bintree

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// None marks an absent child or the root of an empty tree.
const None = -1

// Sentinel errors, all marked trace.ErrInvalidInput.
var (
	// ErrEmptyInput indicates a builder received no values.
	ErrEmptyInput = trace.InvalidInput(errors.New("bintree: input must be non-empty"))

	// ErrNullRoot indicates a level-order input whose first slot is null.
	ErrNullRoot = trace.InvalidInput(errors.New("bintree: level-order root slot is null"))

	// ErrDanglingSlot indicates a non-null level-order slot with no parent.
	ErrDanglingSlot = trace.InvalidInput(errors.New("bintree: level-order slot has no parent"))

	// ErrLengthMismatch indicates traversal sequences of different lengths.
	ErrLengthMismatch = trace.InvalidInput(errors.New("bintree: traversal lengths differ"))

	// ErrDuplicateValue indicates a repeated value in a traversal sequence.
	ErrDuplicateValue = trace.InvalidInput(errors.New("bintree: traversal values must be distinct"))

	// ErrMismatchedSets indicates traversals that do not hold the same values.
	ErrMismatchedSets = trace.InvalidInput(errors.New("bintree: traversals hold different values"))

	// ErrInconsistentTraversals indicates a traversal pair over the same
	// values that no binary tree produces.
	ErrInconsistentTraversals = trace.InvalidInput(errors.New("bintree: traversals describe no single tree"))

	// ErrNotSorted indicates FromSorted input that is not non-decreasing.
	ErrNotSorted = trace.InvalidInput(errors.New("bintree: values are not sorted"))

	// ErrEmptyTree indicates a traversal of a tree without a root.
	ErrEmptyTree = trace.InvalidInput(errors.New("bintree: tree is empty"))

	// ErrMalformedTree indicates broken child links, cycles or shared nodes.
	ErrMalformedTree = trace.InvalidInput(errors.New("bintree: malformed tree"))
)

// Node is one tree node. Left and Right are node IDs or None.
type Node struct {
	ID    int
	Value int
	Left  int
	Right int
}

// Tree is an arena of nodes plus the root ID.
type Tree struct {
	Nodes []Node
	Root  int
}

// Clone returns a copy of t; Node holds no references so a slice copy is deep.
func (t Tree) Clone() Tree {
	return Tree{Nodes: slices.Clone(t.Nodes), Root: t.Root}
}

// Len returns the number of nodes.
func (t Tree) Len() int { return len(t.Nodes) }

// Height returns the number of levels, 0 for an empty tree.
func (t Tree) Height() int {
	var h func(id int) int
	h = func(id int) int {
		if id == None {
			return 0
		}

		return 1 + max(h(t.Nodes[id].Left), h(t.Nodes[id].Right))
	}
	if t.Root == None || t.Root >= len(t.Nodes) {
		return 0
	}

	return h(t.Root)
}

// check verifies that every link is in range and every node is reachable
// from Root exactly once.
func (t Tree) check() error {
	if t.Root == None || len(t.Nodes) == 0 {
		return ErrEmptyTree
	}
	n := len(t.Nodes)
	for i, nd := range t.Nodes {
		if nd.ID != i {
			return errors.Wrapf(ErrMalformedTree, "node at %d carries id %d", i, nd.ID)
		}
		for _, c := range [2]int{nd.Left, nd.Right} {
			if c != None && (c < 0 || c >= n) {
				return errors.Wrapf(ErrMalformedTree, "node %d links to missing node %d", i, c)
			}
		}
	}
	if t.Root < 0 || t.Root >= n {
		return errors.Wrapf(ErrMalformedTree, "root %d out of range", t.Root)
	}
	seen := make([]bool, n)
	stack := []int{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return errors.Wrapf(ErrMalformedTree, "node %d reached twice", id)
		}
		seen[id] = true
		for _, c := range [2]int{t.Nodes[id].Left, t.Nodes[id].Right} {
			if c != None {
				stack = append(stack, c)
			}
		}
	}
	if i := slices.Index(seen, false); i >= 0 {
		return errors.Wrapf(ErrMalformedTree, "node %d is unreachable from the root", i)
	}

	return nil
}

// Slot is one level-order position; the zero Slot is a null marker.
type Slot struct {
	Value   int
	Present bool
}

// V returns a present slot holding v.
func V(v int) Slot { return Slot{Value: v, Present: true} }

// Null is the null marker.
var Null Slot

// Slots converts values to present slots.
func Slots(values ...int) []Slot {
	out := make([]Slot, len(values))
	for i, v := range values {
		out[i] = V(v)
	}

	return out
}

// BuildState is the construction snapshot.
type BuildState struct {
	// Tree is the partially built tree.
	Tree Tree

	// Inputs holds the input sequences; row 0 is the level-order slots,
	// the preorder/inorder (FromPreIn), the inorder/postorder (FromInPost)
	// or the sorted values (FromSorted). Cell highlights address Inputs.
	Inputs [][]Slot
}

// Clone returns a deep copy of s.
func (s BuildState) Clone() BuildState {
	return BuildState{Tree: s.Tree.Clone(), Inputs: trace.CloneGrid(s.Inputs)}
}

// CheckHighlight implements trace.HighlightChecker: indices are node IDs,
// cells are input positions.
func (s BuildState) CheckHighlight(h trace.Highlight) error {
	if err := trace.CheckIndices(h, len(s.Tree.Nodes)); err != nil {
		return err
	}

	return trace.CheckCells(h, s.Inputs)
}

// Order selects a traversal.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

var orderNames = [...]string{"preorder", "inorder", "postorder", "level-order"}

// String returns the traversal name.
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}

	return orderNames[o]
}

// ErrUnknownOrder indicates an Order outside the defined set.
var ErrUnknownOrder = trace.InvalidInput(errors.New("bintree: unknown traversal order"))

// WalkState is the traversal snapshot.
type WalkState struct {
	Tree Tree

	// Visited lists node IDs in visit order.
	Visited []int

	// Path is the recursion path from the root (depth-first orders).
	Path []int

	// Queue holds the pending node IDs (level order).
	Queue []int
}

// Clone returns a deep copy of s.
func (s WalkState) Clone() WalkState {
	return WalkState{
		Tree:    s.Tree.Clone(),
		Visited: slices.Clone(s.Visited),
		Path:    slices.Clone(s.Path),
		Queue:   slices.Clone(s.Queue),
	}
}

// CheckHighlight implements trace.HighlightChecker.
func (s WalkState) CheckHighlight(h trace.Highlight) error {
	return trace.CheckIndices(h, len(s.Tree.Nodes))
}

// VisitedValues returns the values of the visited nodes in visit order.
func (s WalkState) VisitedValues() []int {
	out := make([]int, len(s.Visited))
	for i, id := range s.Visited {
		out[i] = s.Tree.Nodes[id].Value
	}

	return out
}
