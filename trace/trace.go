package trace

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Trace is the ordered, immutable list of steps produced by one run.
// A nil *Trace behaves as an empty trace.
type Trace[S any] struct {
	steps []Step[S]
}

// FromSteps wraps an existing step list without validating it.
// The slice is copied; use Validate to check the invariants.
func FromSteps[S any](steps []Step[S]) *Trace[S] {
	return &Trace[S]{steps: slices.Clone(steps)}
}

// Len returns the number of steps.
func (t *Trace[S]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.steps)
}

// At returns step i. It panics if i is out of range, like a slice index.
func (t *Trace[S]) At(i int) Step[S] { return t.steps[i] }

// First returns step 0 (the untouched input).
func (t *Trace[S]) First() Step[S] { return t.steps[0] }

// Last returns the terminal step.
func (t *Trace[S]) Last() Step[S] { return t.steps[len(t.steps)-1] }

// Steps returns a copy of the step list. Snapshots are shared with the trace.
func (t *Trace[S]) Steps() []Step[S] {
	if t == nil {
		return nil
	}

	return slices.Clone(t.steps)
}

// All iterates over (index, step) pairs in order.
func (t *Trace[S]) All() iter.Seq2[int, Step[S]] {
	return func(yield func(int, Step[S]) bool) {
		for i := 0; i < t.Len(); i++ {
			if !yield(i, t.steps[i]) {
				return
			}
		}
	}
}

// Descriptions returns the description of every step, in order.
func (t *Trace[S]) Descriptions() []string {
	out := make([]string, t.Len())
	for i := range out {
		out[i] = t.steps[i].Description
	}

	return out
}

// Validate checks the trace invariants:
//  1. at least one step (ErrEmptyTrace);
//  2. Steps[i].Index == i;
//  3. exactly the last step is terminal;
//  4. highlights are valid for their own snapshot, when the snapshot type
//     implements HighlightChecker.
//
// Violations 2–4 are reported as ErrMalformedTrace with the offending index.
func (t *Trace[S]) Validate() error {
	n := t.Len()
	if n == 0 {
		return ErrEmptyTrace
	}
	for i, s := range t.steps {
		if s.Index != i {
			return errors.Wrapf(ErrMalformedTrace, "step %d carries index %d", i, s.Index)
		}
		if s.Terminal != (i == n-1) {
			return errors.Wrapf(ErrMalformedTrace, "step %d terminal=%t", i, s.Terminal)
		}
		checker, ok := any(s.Snapshot).(HighlightChecker)
		if !ok {
			continue
		}
		for _, h := range s.Highlights {
			if err := checker.CheckHighlight(h); err != nil {
				return errors.Wrapf(errors.Mark(err, ErrMalformedTrace), "step %d highlight %q", i, h.Role)
			}
		}
	}

	return nil
}
