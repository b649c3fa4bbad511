// Package lcs traces the longest-common-subsequence dynamic program.
//
// Algorithm outline:
//  1. Let n = len(a), m = len(b) in runes. Allocate an (n+1)×(m+1) table.
//  2. Row 0 and column 0 are 0.
//  3. For i = 1..n, j = 1..m:
//     dp[i][j] = dp[i-1][j-1] + 1              if a[i-1] == b[j-1]
//     dp[i][j] = max(dp[i-1][j], dp[i][j-1])   otherwise
//  4. Backtrack from (n, m): on a match move diagonally and keep the rune,
//     otherwise move up when dp[i-1][j] ≥ dp[i][j-1], else left.
//
// One step is recorded per table cell and one per backtrack move. Each
// backtrack step carries the cumulative arrow trail (State.Trail) and the
// part of the subsequence recovered so far (State.Result).
//
// Errors:
//   - ErrEmptyString — either input is empty (marked trace.ErrInvalidInput).
//
// Complexity: O(n·m) cells; memory O(steps·n·m) since each step owns a table.
package lcs
