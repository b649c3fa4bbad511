// Package lps traces the longest-palindromic-subsequence interval DP.
//
// dp[i][j] is the length of the longest palindromic subsequence of s[i..j]:
//
//	dp[i][i] = 1
//	dp[i][j] = dp[i+1][j-1] + 2            if s[i] == s[j] (inner is 0 when empty)
//	dp[i][j] = max(dp[i+1][j], dp[i][j-1]) otherwise
//
// Cells are filled by interval length 2..n after one base step per diagonal
// cell. The trace-back recurses from (0, n-1): matching ends are kept and
// the search descends into (i+1, j-1); otherwise it descends into the
// larger neighbour, preferring (i+1, j) on ties. The palindrome is assembled
// from both ends inwards (State.Prefix, State.Suffix) and is complete in
// State.Result on the terminal step.
//
// Errors:
//   - ErrEmptyString — the input is empty (marked trace.ErrInvalidInput).
package lps
