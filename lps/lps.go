package lps

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

type runner struct {
	s   []rune
	st  State
	rec *trace.Recorder[State]
}

// Trace fills the interval table of s and reconstructs one longest
// palindromic subsequence.
func Trace(s string) (*trace.Trace[State], error) {
	if s == "" {
		return nil, ErrEmptyString
	}
	r := &runner{s: []rune(s)}
	n := len(r.s)
	r.st.Table = trace.NewGrid[int](n, n)
	r.rec = trace.NewRecorder(r.st, fmt.Sprintf("LPS of %q: %d×%d interval table", s, n, n))

	dp := r.st.Table
	for i := 0; i < n; i++ {
		dp[i][i] = 1
		r.rec.Record(r.st, fmt.Sprintf("base case: dp[%d][%d] = 1 for '%c'", i, i, r.s[i]), r.cur(i, i))
	}

	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			if r.s[i] == r.s[j] {
				inner := 0
				var hl []trace.Highlight
				if i+1 <= j-1 {
					inner = dp[i+1][j-1]
					hl = append(hl, trace.Cells(trace.RoleComparing, trace.Cell{Row: i + 1, Col: j - 1}))
				}
				dp[i][j] = inner + 2
				r.rec.Record(r.st,
					fmt.Sprintf("'%c' at %d and %d match: dp[%d][%d] = %d+2 = %d", r.s[i], i, j, i, j, inner, dp[i][j]),
					append(hl, r.cur(i, j))...)

				continue
			}
			dp[i][j] = max(dp[i+1][j], dp[i][j-1])
			r.rec.Record(r.st,
				fmt.Sprintf("'%c' ≠ '%c': dp[%d][%d] = max(dp[%d][%d]=%d, dp[%d][%d]=%d) = %d",
					r.s[i], r.s[j], i, j, i+1, j, dp[i+1][j], i, j-1, dp[i][j-1], dp[i][j]),
				r.cur(i, j),
				trace.Cells(trace.RoleComparing, trace.Cell{Row: i + 1, Col: j}, trace.Cell{Row: i, Col: j - 1}))
		}
	}

	center := r.back(0, n-1)
	r.st.Result = r.st.Prefix + center + r.st.Suffix

	return r.rec.Finish(r.st,
		fmt.Sprintf("longest palindromic subsequence %q of length %d", r.st.Result, dp[0][n-1]),
		trace.Cells(trace.RoleSelected, trace.Cell{Row: 0, Col: n - 1})), nil
}

// back records the trace-back of interval [i, j] and returns the middle
// part that is not yet in Prefix/Suffix.
func (r *runner) back(i, j int) string {
	if i > j {
		return ""
	}
	dp := r.st.Table
	if i == j {
		r.rec.Record(r.st, fmt.Sprintf("(%d,%d) single '%c' becomes the center", i, j, r.s[i]),
			r.cur(i, j), trace.Indices(trace.RoleSelected, i))

		return string(r.s[i])
	}
	if r.s[i] == r.s[j] {
		c := string(r.s[i])
		r.st.Prefix += c
		r.st.Suffix = c + r.st.Suffix
		r.rec.Record(r.st, fmt.Sprintf("(%d,%d) ends '%c' match: keep both, descend into (%d,%d)", i, j, r.s[i], i+1, j-1),
			r.cur(i, j), trace.Indices(trace.RoleSelected, i, j))

		return r.back(i+1, j-1)
	}
	if dp[i+1][j] >= dp[i][j-1] {
		r.rec.Record(r.st, fmt.Sprintf("(%d,%d) ends differ, dp[%d][%d]=%d ≥ dp[%d][%d]=%d: descend into (%d,%d)",
			i, j, i+1, j, dp[i+1][j], i, j-1, dp[i][j-1], i+1, j), r.cur(i, j))

		return r.back(i+1, j)
	}
	r.rec.Record(r.st, fmt.Sprintf("(%d,%d) ends differ, dp[%d][%d]=%d < dp[%d][%d]=%d: descend into (%d,%d)",
		i, j, i+1, j, dp[i+1][j], i, j-1, dp[i][j-1], i, j-1), r.cur(i, j))

	return r.back(i, j-1)
}

func (r *runner) cur(i, j int) trace.Highlight {
	return trace.Cells(trace.RoleCurrent, trace.Cell{Row: i, Col: j})
}
