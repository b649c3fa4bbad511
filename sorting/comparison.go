package sorting

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// BubbleSort repeatedly swaps adjacent out-of-order pairs. After pass i the
// largest i+1 values sit at the end of the array. It stops early after a
// pass without swaps.
func BubbleSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Bubble, values)
	if err != nil {
		return nil, err
	}
	n := len(s.st.Values)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			s.compare(j, j+1)
			if s.st.Values[j] > s.st.Values[j+1] {
				s.swap(j, j+1)
				swapped = true
			}
		}
		s.markSorted(n - 1 - i)
		if !swapped {
			s.markSorted(span(0, n-1-i)...)
			s.record(fmt.Sprintf("pass %d made no swaps: array is sorted", i+1))
			break
		}
		s.record(fmt.Sprintf("pass %d complete: a[%d]=%d is in its final position", i+1, n-1-i, s.st.Values[n-1-i]))
	}

	return s.finish(), nil
}

// SelectionSort selects the minimum of the unsorted suffix and swaps it into
// the next position.
func SelectionSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Selection, values)
	if err != nil {
		return nil, err
	}
	n := len(s.st.Values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		s.record(fmt.Sprintf("pass %d: assume a[%d]=%d is the minimum", i+1, i, s.st.Values[i]),
			trace.Indices(trace.RoleCurrent, i))
		for j := i + 1; j < n; j++ {
			s.compare(j, minIdx, trace.Indices(trace.RoleCurrent, minIdx))
			if s.st.Values[j] < s.st.Values[minIdx] {
				minIdx = j
				s.record(fmt.Sprintf("new minimum a[%d]=%d", j, s.st.Values[j]), trace.Indices(trace.RoleCurrent, j))
			}
		}
		if minIdx != i {
			s.swap(i, minIdx)
		}
		s.markSorted(i)
		s.record(fmt.Sprintf("pass %d complete: a[%d]=%d is in its final position", i+1, i, s.st.Values[i]))
	}

	return s.finish(), nil
}

// InsertionSort grows a sorted prefix by sinking each new element with
// adjacent swaps until it meets a smaller or equal neighbour.
func InsertionSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Insertion, values)
	if err != nil {
		return nil, err
	}
	n := len(s.st.Values)
	for i := 1; i < n; i++ {
		s.record(fmt.Sprintf("insert a[%d]=%d into the sorted prefix a[0..%d]", i, s.st.Values[i], i-1),
			trace.Indices(trace.RoleCurrent, i), trace.Indices(trace.RoleRange, span(0, i-1)...))
		for j := i; j > 0; j-- {
			s.compare(j-1, j)
			if s.st.Values[j-1] <= s.st.Values[j] {
				break
			}
			s.swap(j-1, j)
		}
		s.record(fmt.Sprintf("prefix a[0..%d] is sorted", i), trace.Indices(trace.RoleRange, span(0, i)...))
	}

	return s.finish(), nil
}

// QuickSort is a Lomuto-partition quicksort using the last element of each
// range as pivot.
func QuickSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Quick, values)
	if err != nil {
		return nil, err
	}
	s.quick(0, len(s.st.Values)-1)

	return s.finish(), nil
}

func (s *sorter) quick(lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		s.markSorted(lo)
		s.record(fmt.Sprintf("a[%d]=%d is a single-element range: in place", lo, s.st.Values[lo]))

		return
	}
	p := s.partition(lo, hi)
	s.quick(lo, p-1)
	s.quick(p+1, hi)
}

func (s *sorter) partition(lo, hi int) int {
	pivot := s.st.Values[hi]
	pv := trace.Indices(trace.RolePivot, hi)
	s.record(fmt.Sprintf("partition a[%d..%d] around pivot a[%d]=%d", lo, hi, hi, pivot),
		pv, trace.Indices(trace.RoleRange, span(lo, hi)...))
	i := lo
	for j := lo; j < hi; j++ {
		s.compare(j, hi, pv)
		if s.st.Values[j] < pivot {
			if i != j {
				s.swap(i, j, pv)
			}
			i++
		}
	}
	if i != hi {
		s.swap(i, hi, trace.Indices(trace.RolePivot, i))
	}
	s.markSorted(i)
	s.record(fmt.Sprintf("partition done: pivot %d placed at its final index %d", pivot, i),
		trace.Indices(trace.RolePivot, i))

	return i
}

// HeapSort builds a max-heap in place, then repeatedly moves the root to the
// end of the shrinking heap.
func HeapSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Heap, values)
	if err != nil {
		return nil, err
	}
	n := len(s.st.Values)
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i, n)
	}
	s.record(fmt.Sprintf("max-heap built: root a[0]=%d", s.st.Values[0]), trace.Indices(trace.RoleHeapRoot, 0))
	for end := n - 1; end > 0; end-- {
		s.swap(0, end, trace.Indices(trace.RoleHeapRoot, 0))
		s.markSorted(end)
		s.siftDown(0, end)
	}
	s.markSorted(0)

	return s.finish(), nil
}

// siftDown restores the max-heap property for the subtree at root within
// a[0:size] and records the close of the heapify call.
func (s *sorter) siftDown(root, size int) {
	start := root
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		hr := trace.Indices(trace.RoleHeapRoot, root)
		if l < size {
			s.compare(l, largest, hr)
			if s.st.Values[l] > s.st.Values[largest] {
				largest = l
			}
		}
		if r < size {
			s.compare(r, largest, hr)
			if s.st.Values[r] > s.st.Values[largest] {
				largest = r
			}
		}
		if largest == root {
			break
		}
		s.swap(root, largest, hr)
		root = largest
	}
	s.record(fmt.Sprintf("heapify(%d) done within heap size %d", start, size),
		trace.Indices(trace.RoleHeapRoot, start), trace.Indices(trace.RoleRange, span(0, size-1)...))
}
