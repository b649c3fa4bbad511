package sorting

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// MergeSort is a top-down merge sort. Each merge copies the run into the
// auxiliary buffer first, then writes the merged result back into the array.
func MergeSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Merge, values)
	if err != nil {
		return nil, err
	}
	s.mergeSort(0, len(s.st.Values))

	return s.finish(), nil
}

// mergeSort sorts the half-open range [lo, hi).
func (s *sorter) mergeSort(lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	mid := (lo + hi) / 2
	s.record(fmt.Sprintf("split a[%d..%d] into a[%d..%d] and a[%d..%d]", lo, hi-1, lo, mid-1, mid, hi-1),
		trace.Indices(trace.RoleRange, span(lo, hi-1)...), trace.Indices(trace.RoleCurrent, mid))
	s.mergeSort(lo, mid)
	s.mergeSort(mid, hi)
	s.merge(lo, mid, hi)
}

func (s *sorter) merge(lo, mid, hi int) {
	a, aux := s.st.Values, s.st.Aux
	copy(aux[lo:hi], a[lo:hi])
	s.record(fmt.Sprintf("copy a[%d..%d] into the auxiliary buffer", lo, hi-1),
		trace.Indices(trace.RoleAuxiliary, span(lo, hi-1)...))

	i, j := lo, mid
	for k := lo; k < hi; k++ {
		var src int
		switch {
		case i >= mid:
			src, j = j, j+1
		case j >= hi:
			src, i = i, i+1
		default:
			s.record(fmt.Sprintf("compare aux[%d]=%d with aux[%d]=%d", i, aux[i], j, aux[j]),
				trace.Indices(trace.RoleAuxiliary, i, j))
			if aux[i] <= aux[j] {
				src, i = i, i+1
			} else {
				src, j = j, j+1
			}
		}
		a[k] = aux[src]
		s.record(fmt.Sprintf("write aux[%d]=%d back into a[%d]", src, aux[src], k),
			trace.Indices(trace.RoleAuxiliary, src), trace.Indices(trace.RoleSwapping, k))
	}
	s.record(fmt.Sprintf("merged a[%d..%d]: %v", lo, hi-1, a[lo:hi]),
		trace.Indices(trace.RoleRange, span(lo, hi-1)...))
}
