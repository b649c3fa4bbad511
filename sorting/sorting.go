package sorting

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Run dispatches to the instrumented sort selected by alg.
// The input slice is never modified.
func Run(alg Algorithm, values []int) (*trace.Trace[State], error) {
	switch alg {
	case Bubble:
		return BubbleSort(values)
	case Selection:
		return SelectionSort(values)
	case Insertion:
		return InsertionSort(values)
	case Merge:
		return MergeSort(values)
	case Quick:
		return QuickSort(values)
	case Heap:
		return HeapSort(values)
	case Bucket:
		return BucketSort(values)
	case Radix:
		return RadixSort(values)
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "algorithm=%d", int(alg))
	}
}

// sorter carries the working state shared by every sort: the mutable
// snapshot, the recorder and the set of indices already in final position.
type sorter struct {
	st     State
	rec    *trace.Recorder[State]
	sorted []int
}

// newSorter validates values and records step 0.
func newSorter(alg Algorithm, values []int) (*sorter, error) {
	if len(values) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%s sort", alg)
	}
	s := &sorter{st: State{Values: slices.Clone(values)}}
	switch alg {
	case Merge:
		s.st.Aux = make([]int, len(values))
	case Bucket:
		s.st.Buckets = emptyBuckets(len(values))
	case Radix:
		s.st.Buckets = emptyBuckets(radixBase)
	}
	s.rec = trace.NewRecorder(s.st, fmt.Sprintf("%s sort: initial array %v", alg, values))

	return s, nil
}

// record appends a step; the current sorted set is attached automatically.
func (s *sorter) record(desc string, hl ...trace.Highlight) {
	if len(s.sorted) > 0 {
		hl = append(hl, trace.Indices(trace.RoleSorted, s.sorted...))
	}
	s.rec.Record(s.st, desc, hl...)
}

// compare records a comparison between a[i] and a[j].
func (s *sorter) compare(i, j int, extra ...trace.Highlight) {
	v := s.st.Values
	hl := append([]trace.Highlight{trace.Indices(trace.RoleComparing, i, j)}, extra...)
	s.record(fmt.Sprintf("compare a[%d]=%d with a[%d]=%d", i, v[i], j, v[j]), hl...)
}

// swap exchanges a[i] and a[j] and records the result.
func (s *sorter) swap(i, j int, extra ...trace.Highlight) {
	v := s.st.Values
	v[i], v[j] = v[j], v[i]
	hl := append([]trace.Highlight{trace.Indices(trace.RoleSwapping, i, j)}, extra...)
	s.record(fmt.Sprintf("swap a[%d] and a[%d]: now %d and %d", i, j, v[i], v[j]), hl...)
}

// markSorted flags indices as being in their final position.
func (s *sorter) markSorted(idx ...int) {
	for _, i := range idx {
		if !slices.Contains(s.sorted, i) {
			s.sorted = append(s.sorted, i)
		}
	}
	slices.Sort(s.sorted)
}

// finish records the terminal step with every index sorted.
func (s *sorter) finish() *trace.Trace[State] {
	all := make([]int, len(s.st.Values))
	for i := range all {
		all[i] = i
	}

	return s.rec.Finish(s.st, fmt.Sprintf("array sorted: %v", s.st.Values), trace.Indices(trace.RoleSorted, all...))
}

// span returns the indices lo..hi inclusive.
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

func emptyBuckets(n int) [][]int {
	b := make([][]int, n)
	for i := range b {
		b[i] = []int{}
	}

	return b
}
