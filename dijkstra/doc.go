// Package dijkstra provides an instrumented Dijkstra shortest-path search that
// records every initialization, edge relaxation and vertex finalization as a
// replayable step trace.
//
// Overview:
//
//   - The search runs from a Source to a Target over a small Graph with
//     non-negative integer weights and stops as soon as the Target is
//     finalized.
//   - Selection is the textbook O(V²) scan: among unvisited vertices the one
//     with strictly minimal tentative distance is chosen; ties go to the
//     vertex whose ID sorts first. No heap is used, so the recorded order is
//     exactly the order a student would follow on paper.
//   - If the minimal tentative distance is ∞ the remaining vertices are
//     unreachable: the terminal step records "no path" and carries an empty
//     Path. This is a valid outcome, not an error.
//
// Recorded steps:
//
//   - initialize:  dist[Source]=0, every other distance ∞.
//   - finalize:    a vertex leaves the frontier with its final distance.
//   - relax:       one step per considered edge u→v to an unvisited v,
//     stating whether the tentative distance improved.
//   - terminal:    the reconstructed path and its total distance, or the
//     unreachability message.
//
// Options:
//
//   - Source(id), Target(id):   required endpoints.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable walls.
//
// Error handling (all marked as trace.ErrInvalidInput):
//
//   - ErrNilGraph:        nil *Graph.
//   - ErrEmptySource:     Source not set.
//   - ErrEmptyTarget:     Target not set.
//   - ErrVertexNotFound:  Source or Target missing from the graph.
//   - ErrNegativeWeight:  an edge has a negative weight (O(E) pre-scan).
//   - ErrBadInfThreshold: (via panic) WithInfEdgeThreshold(t ≤ 0).
//
// Complexity:
//
//   - Time:  O(V² + E) plus O(V) per recorded step for the snapshot copy.
//   - Space: O(steps · V).
package dijkstra
