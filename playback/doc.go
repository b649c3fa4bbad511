// Package playback drives a cursor over a materialized trace the way a VCR
// drives a tape: play, pause, step forward and backward, seek, change speed
// and reset.
//
// State machine:
//
//	Idle ──Initialize──▶ Paused ──Play──▶ Playing ──last tick──▶ Completed
//	                       ▲                 │                      │
//	                       └──Pause/Step/Seek/Reset──┘   StepBackward/Seek/Reset
//
// Initialize may be called in any state and always lands in Paused at
// cursor 0. Play at the last index is a no-op; the cursor never wraps.
//
// Automatic playback is a chain of deferred single-step advances obtained
// from a Scheduler (time.AfterFunc by default). Each scheduled tick carries
// the generation it was scheduled in; every transition out of Playing bumps
// the generation and stops the pending timer, so a tick that fires late is
// discarded instead of double-advancing the cursor. The first advance
// happens on the first tick: Play immediately followed by Pause leaves the
// cursor where it was.
//
// Observers registered with Subscribe are called after every cursor or
// state change, outside the controller lock. Events reach observers in the
// order they happened; one overtaken by a later change before delivery
// started is dropped, so the last event seen matches Status.
package playback
