package sorting

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors, all marked as trace.ErrInvalidInput.
var (
	// ErrEmptyInput indicates an empty input slice.
	ErrEmptyInput = trace.InvalidInput(errors.New("sorting: input must be non-empty"))

	// ErrNegativeValue indicates a negative value passed to Radix.
	ErrNegativeValue = trace.InvalidInput(errors.New("sorting: radix sort requires non-negative values"))

	// ErrUnknownAlgorithm indicates an Algorithm value outside the enum.
	ErrUnknownAlgorithm = trace.InvalidInput(errors.New("sorting: unknown algorithm"))
)

// Algorithm selects one of the instrumented sorts.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
	Bucket
	Radix
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
	Bucket:    "bucket",
	Radix:     "radix",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}

	return algorithmNames[a]
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap, Bucket, Radix}
}

// State is the primary snapshot of a sorting step.
type State struct {
	// Values is the array being sorted, mutated in place between steps.
	Values []int

	// Aux is the merge sort auxiliary buffer (nil for other algorithms).
	Aux []int

	// Buckets is the bucket-of-buckets structure (bucket and radix sort).
	Buckets [][]int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Values:  slices.Clone(s.Values),
		Aux:     slices.Clone(s.Aux),
		Buckets: trace.CloneGrid(s.Buckets),
	}
}

// CheckHighlight implements trace.HighlightChecker.
// RoleBucket indices address Buckets, RoleAuxiliary indices address Aux,
// every other role addresses Values.
func (s State) CheckHighlight(h trace.Highlight) error {
	switch h.Role {
	case trace.RoleBucket:
		return trace.CheckIndices(h, len(s.Buckets))
	case trace.RoleAuxiliary:
		return trace.CheckIndices(h, len(s.Aux))
	default:
		return trace.CheckIndices(h, len(s.Values))
	}
}
