// Package algotrace turns classic algorithms into replayable step traces
// and plays them back like a tape.
//
// What is in the box?
//
//	trace/      — Step, Highlight, Recorder and the immutable Trace
//	sorting/    — bubble, selection, insertion, merge, quick, heap, bucket, radix
//	dijkstra/   — shortest path with relaxation and finalize steps
//	knapsack/   — 0/1 DP table + backtracking, and the greedy ratio baseline
//	lcs/        — longest common subsequence table and backtrack arrows
//	lps/        — longest palindromic subsequence interval DP
//	bintree/    — tree construction (level order, traversal pairs, sorted) and traversals
//	playback/   — Idle/Paused/Playing/Completed controller over any trace
//	metrics/    — Prometheus collectors for generation and playback
//	visualizer/ — one Session per trace: strategy by Kind, controller ownership
//
// Every generator is a pure, deterministic function: it validates its input
// before recording anything and returns an error marked
// trace.ErrInvalidInput on bad input, never a partial trace. Step 0 is the
// untouched input, exactly the last step is terminal, and every snapshot is
// a deep copy.
//
// Quick start:
//
//	tr, err := sorting.Run(sorting.Quick, []int{5, 2, 9, 1})
//	if err != nil {
//		return err
//	}
//	c := playback.NewController[sorting.State]()
//	defer c.Close()
//	_ = c.Initialize(tr)
//	_ = c.Play()
package algotrace
