package visualizer

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/algotrace/sorting"
)

// Kind identifies an algorithm family member.
type Kind int

const (
	BubbleSort Kind = iota
	SelectionSort
	InsertionSort
	MergeSort
	QuickSort
	HeapSort
	BucketSort
	RadixSort
	Dijkstra
	Knapsack
	KnapsackGreedy
	LCS
	LPS
	TreeFromLevelOrder
	TreeFromPreIn
	TreeFromInPost
	TreeFromSorted
	TreeTraversal
	numKinds
)

var kindNames = [numKinds]string{
	BubbleSort:         "bubble-sort",
	SelectionSort:      "selection-sort",
	InsertionSort:      "insertion-sort",
	MergeSort:          "merge-sort",
	QuickSort:          "quick-sort",
	HeapSort:           "heap-sort",
	BucketSort:         "bucket-sort",
	RadixSort:          "radix-sort",
	Dijkstra:           "dijkstra",
	Knapsack:           "knapsack",
	KnapsackGreedy:     "knapsack-greedy",
	LCS:                "lcs",
	LPS:                "lps",
	TreeFromLevelOrder: "tree-level-order",
	TreeFromPreIn:      "tree-pre-in",
	TreeFromInPost:     "tree-in-post",
	TreeFromSorted:     "tree-sorted",
	TreeTraversal:      "tree-traversal",
}

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("visualizer: unknown algorithm kind")

var _ redact.SafeValue = Kind(0)

// SafeValue implements redact.SafeValue.
func (Kind) SafeValue() {}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}

	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// sortKinds maps sorting algorithms to their kinds.
var sortKinds = map[sorting.Algorithm]Kind{
	sorting.Bubble:    BubbleSort,
	sorting.Selection: SelectionSort,
	sorting.Insertion: InsertionSort,
	sorting.Merge:     MergeSort,
	sorting.Quick:     QuickSort,
	sorting.Heap:      HeapSort,
	sorting.Bucket:    BucketSort,
	sorting.Radix:     RadixSort,
}
