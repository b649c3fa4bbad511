package trace

import "github.com/cockroachdb/errors"

// Recorder accumulates the steps of one algorithm run.
//
// Every Record clones the given state, so the algorithm keeps mutating its
// own working copy in place. A Recorder is single-use: once Finish returns
// the trace, further calls panic.
type Recorder[S Snapshot[S]] struct {
	steps    []Step[S]
	finished bool
}

// NewRecorder starts a recording whose step 0 is the given initial state.
func NewRecorder[S Snapshot[S]](initial S, description string, hl ...Highlight) *Recorder[S] {
	r := &Recorder[S]{steps: make([]Step[S], 0, 32)}
	r.Record(initial, description, hl...)

	return r
}

// Record appends a non-terminal step holding a deep copy of state.
func (r *Recorder[S]) Record(state S, description string, hl ...Highlight) {
	r.append(state, description, false, hl)
}

// Finish appends the terminal step and returns the completed trace.
func (r *Recorder[S]) Finish(state S, description string, hl ...Highlight) *Trace[S] {
	r.append(state, description, true, hl)
	r.finished = true

	return &Trace[S]{steps: r.steps}
}

// Len returns the number of steps recorded so far.
func (r *Recorder[S]) Len() int { return len(r.steps) }

func (r *Recorder[S]) append(state S, description string, terminal bool, hl []Highlight) {
	if r.finished {
		panic(errors.AssertionFailedf("trace: step %q recorded after Finish", description))
	}
	var highlights []Highlight
	if len(hl) > 0 {
		highlights = make([]Highlight, 0, len(hl))
		for _, h := range hl {
			if h.Empty() {
				continue
			}
			highlights = append(highlights, h.clone())
		}
	}
	r.steps = append(r.steps, Step[S]{
		Index:       len(r.steps),
		Snapshot:    state.Clone(),
		Highlights:  highlights,
		Description: description,
		Terminal:    terminal,
	})
}
