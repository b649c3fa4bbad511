package sorting

import (
	"fmt"
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

const radixBase = 10

// BucketSort distributes n values into n buckets by normalized value, sorts
// each bucket, and gathers the buckets back in order.
func BucketSort(values []int) (*trace.Trace[State], error) {
	s, err := newSorter(Bucket, values)
	if err != nil {
		return nil, err
	}
	n := len(s.st.Values)
	lo, hi := slices.Min(s.st.Values), slices.Max(s.st.Values)
	for i, v := range s.st.Values {
		b := BucketIndex(v, lo, hi, n)
		s.st.Buckets[b] = append(s.st.Buckets[b], v)
		s.record(fmt.Sprintf("a[%d]=%d goes to bucket %d", i, v, b),
			trace.Indices(trace.RoleCurrent, i), trace.Indices(trace.RoleBucket, b))
	}
	for b, bucket := range s.st.Buckets {
		if len(bucket) == 0 {
			continue
		}
		slices.Sort(bucket)
		s.record(fmt.Sprintf("bucket %d sorted: %v", b, bucket), trace.Indices(trace.RoleBucket, b))
	}
	s.gather(true)

	return s.finish(), nil
}

// BucketIndex maps v to a bucket among n using floor(n·norm) clamped to n-1,
// where norm = (v-lo)/(hi-lo). When hi == lo every value maps to bucket 0.
func BucketIndex(v, lo, hi, n int) int {
	if hi == lo {
		return 0
	}
	// Subtract in float64: v-lo and hi-lo overflow int on wide ranges.
	norm := (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
	idx := int(math.Floor(float64(n) * norm))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}

	return idx
}

// RadixSort is an LSD radix sort in base 10. Each pass distributes the
// array by the current digit and gathers the buckets back in order.
func RadixSort(values []int) (*trace.Trace[State], error) {
	for i, v := range values {
		if v < 0 {
			return nil, errors.Wrapf(ErrNegativeValue, "a[%d]=%d", i, v)
		}
	}
	s, err := newSorter(Radix, values)
	if err != nil {
		return nil, err
	}
	maxVal := slices.Max(s.st.Values)
	for exp, pass := 1, 1; maxVal/exp > 0; exp, pass = exp*radixBase, pass+1 {
		s.st.Buckets = emptyBuckets(radixBase)
		s.record(fmt.Sprintf("pass %d: distribute by the digit worth %d", pass, exp))
		for i, v := range s.st.Values {
			d := (v / exp) % radixBase
			s.st.Buckets[d] = append(s.st.Buckets[d], v)
			s.record(fmt.Sprintf("a[%d]=%d has digit %d: goes to bucket %d", i, v, d, d),
				trace.Indices(trace.RoleCurrent, i), trace.Indices(trace.RoleBucket, d))
		}
		s.gather(false)
		s.record(fmt.Sprintf("pass %d complete: %v", pass, s.st.Values))
	}

	return s.finish(), nil
}

// gather copies the buckets back into the array in bucket order, one step
// per element. When final is set the gathered slots are already in their
// final position (bucket sort) and are marked sorted.
func (s *sorter) gather(final bool) {
	k := 0
	for b, bucket := range s.st.Buckets {
		for _, v := range bucket {
			s.st.Values[k] = v
			if final {
				s.markSorted(k)
			}
			s.record(fmt.Sprintf("gather bucket %d value %d into a[%d]", b, v, k),
				trace.Indices(trace.RoleBucket, b), trace.Indices(trace.RoleSwapping, k))
			k++
		}
	}
}
