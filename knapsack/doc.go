// Package knapsack traces two solvers for the 0/1 knapsack problem.
//
// Solve — the dynamic-programming solver.
//
//	dp[i][w] is the best value using the first i items within capacity w.
//	  dp[0][w] = 0
//	  dp[i][w] = dp[i-1][w]                                   if wᵢ > w
//	  dp[i][w] = max(dp[i-1][w], dp[i-1][w-wᵢ] + vᵢ)          otherwise
//	One step is recorded per computed cell with both candidates and the
//	formula applied. Backtracking then walks from dp[n][capacity] to row 0,
//	one step per row: item i is selected iff dp[i][w] ≠ dp[i-1][w].
//
// Greedy — a comparison baseline, NOT a correct 0/1 solver.
//
//	Items are sorted by value/weight ratio (the fractional-knapsack
//	heuristic) and taken whole while they fit. Every description says so;
//	it exists to contrast with Solve, and it is intentionally left
//	non-optimal.
//
// Errors (all marked as trace.ErrInvalidInput):
//
//   - ErrBadCapacity — capacity ≤ 0.
//   - ErrNoItems     — empty item list.
//   - ErrBadItem     — an item with weight ≤ 0 or value < 0.
//
// Complexity: Solve is O(n·W) cells, each step copying the (n+1)×(W+1)
// table, so O(n²·W²) memory overall; fine for toy sizes only.
package knapsack
