// Package trace defines the step-trace schema shared by every instrumented
// algorithm in algotrace, together with the Recorder used to build a trace
// and the Trace container that playback consumes.
//
// 🚀 What is a trace?
//
//	An instrumented algorithm re-runs a textbook procedure over a small input
//	and, at every semantically meaningful transition, snapshots its working
//	state into a Step:
//	  • Index       — dense, 0-based position in the trace
//	  • Snapshot    — a deep copy of the evolving structure (array, DP table,
//	                  distance map, tree arena, ...)
//	  • Highlights  — named position sets: "comparing", "pivot", "sorted", ...
//	  • Description — a human-readable sentence for the transition
//	  • Terminal    — true only on the final step
//
// ✨ Invariants (checked by Trace.Validate):
//
//   - a trace is never empty and step 0 is the untouched input;
//   - Steps[i].Index == i for every i;
//   - exactly the last step is terminal;
//   - every snapshot is owned by its step, later mutations of the working
//     state never leak into earlier steps;
//   - highlight positions are valid for the snapshot of the same step (only
//     for snapshot types implementing HighlightChecker).
//
// ⚙️ Usage:
//
//	rec := trace.NewRecorder(state, "initial array")
//	for ... {
//	    // mutate state in place
//	    rec.Record(state, "swap a[0] and a[1]", trace.Indices(trace.RoleSwapping, 0, 1))
//	}
//	tr := rec.Finish(state, "array sorted")
//
// Snapshot types implement Clone; the recorder calls it on every Record, so
// callers are free to keep mutating their working copy.
//
// Errors:
//
//	ErrInvalidInput is the umbrella sentinel for rejected algorithm input.
//	Family packages mark their own sentinels with InvalidInput so callers can
//	branch with errors.Is(err, trace.ErrInvalidInput) regardless of family.
package trace
