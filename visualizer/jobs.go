package visualizer

import (
	"github.com/katalvlaran/algotrace/bintree"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/knapsack"
	"github.com/katalvlaran/algotrace/lcs"
	"github.com/katalvlaran/algotrace/lps"
	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
)

// Job is one trace generation bound to its Kind.
type Job[S any] struct {
	Kind     Kind
	Generate func() (*trace.Trace[S], error)
}

// Sort runs one of the instrumented sorts. An unknown algorithm is
// reported by sorting.Run when the job runs.
func Sort(alg sorting.Algorithm, values []int) Job[sorting.State] {
	k, ok := sortKinds[alg]
	if !ok {
		k = -1
	}

	return Job[sorting.State]{Kind: k, Generate: func() (*trace.Trace[sorting.State], error) {
		return sorting.Run(alg, values)
	}}
}

// ShortestPath runs Dijkstra from source to target.
func ShortestPath(g *dijkstra.Graph, source, target string, opts ...dijkstra.Option) Job[dijkstra.State] {
	all := append([]dijkstra.Option{dijkstra.Source(source), dijkstra.Target(target)}, opts...)

	return Job[dijkstra.State]{Kind: Dijkstra, Generate: func() (*trace.Trace[dijkstra.State], error) {
		return dijkstra.Trace(g, all...)
	}}
}

// KnapsackDP runs the exact 0/1 knapsack solver.
func KnapsackDP(items []knapsack.Item, capacity int) Job[knapsack.DPState] {
	return Job[knapsack.DPState]{Kind: Knapsack, Generate: func() (*trace.Trace[knapsack.DPState], error) {
		return knapsack.Solve(items, capacity)
	}}
}

// KnapsackRatio runs the greedy value/weight baseline.
func KnapsackRatio(items []knapsack.Item, capacity int) Job[knapsack.GreedyState] {
	return Job[knapsack.GreedyState]{Kind: KnapsackGreedy, Generate: func() (*trace.Trace[knapsack.GreedyState], error) {
		return knapsack.Greedy(items, capacity)
	}}
}

// CommonSubsequence runs the LCS table fill and backtrack.
func CommonSubsequence(a, b string) Job[lcs.State] {
	return Job[lcs.State]{Kind: LCS, Generate: func() (*trace.Trace[lcs.State], error) {
		return lcs.Trace(a, b)
	}}
}

// PalindromicSubsequence runs the LPS interval DP.
func PalindromicSubsequence(s string) Job[lps.State] {
	return Job[lps.State]{Kind: LPS, Generate: func() (*trace.Trace[lps.State], error) {
		return lps.Trace(s)
	}}
}

// LevelOrderTree builds a tree from level-order slots.
func LevelOrderTree(slots []bintree.Slot) Job[bintree.BuildState] {
	return Job[bintree.BuildState]{Kind: TreeFromLevelOrder, Generate: func() (*trace.Trace[bintree.BuildState], error) {
		return bintree.FromLevelOrder(slots)
	}}
}

// PreInTree rebuilds a tree from preorder and inorder.
func PreInTree(pre, in []int) Job[bintree.BuildState] {
	return Job[bintree.BuildState]{Kind: TreeFromPreIn, Generate: func() (*trace.Trace[bintree.BuildState], error) {
		return bintree.FromPreIn(pre, in)
	}}
}

// InPostTree rebuilds a tree from inorder and postorder.
func InPostTree(in, post []int) Job[bintree.BuildState] {
	return Job[bintree.BuildState]{Kind: TreeFromInPost, Generate: func() (*trace.Trace[bintree.BuildState], error) {
		return bintree.FromInPost(in, post)
	}}
}

// SortedTree builds a balanced BST from sorted values.
func SortedTree(values []int) Job[bintree.BuildState] {
	return Job[bintree.BuildState]{Kind: TreeFromSorted, Generate: func() (*trace.Trace[bintree.BuildState], error) {
		return bintree.FromSorted(values)
	}}
}

// Traversal walks a tree in the given order.
func Traversal(t bintree.Tree, order bintree.Order) Job[bintree.WalkState] {
	return Job[bintree.WalkState]{Kind: TreeTraversal, Generate: func() (*trace.Trace[bintree.WalkState], error) {
		return bintree.Traverse(t, order)
	}}
}
