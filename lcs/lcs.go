package lcs

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Trace fills the LCS table of a and b and backtracks one subsequence.
func Trace(a, b string) (*trace.Trace[State], error) {
	if a == "" || b == "" {
		return nil, ErrEmptyString
	}
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	st := State{Table: trace.NewGrid[int](n+1, m+1)}
	rec := trace.NewRecorder(st,
		fmt.Sprintf("LCS of %q and %q: %d×%d table, row 0 and column 0 are 0", a, b, n+1, m+1))

	// 1) Fill.
	dp := st.Table
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cur := trace.Cells(trace.RoleCurrent, trace.Cell{Row: i, Col: j})
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				rec.Record(st,
					fmt.Sprintf("'%c' = '%c': dp[%d][%d] = dp[%d][%d]+1 = %d", ra[i-1], rb[j-1], i, j, i-1, j-1, dp[i][j]),
					cur, trace.Cells(trace.RoleComparing, trace.Cell{Row: i - 1, Col: j - 1}))

				continue
			}
			dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			rec.Record(st,
				fmt.Sprintf("'%c' ≠ '%c': dp[%d][%d] = max(dp[%d][%d]=%d, dp[%d][%d]=%d) = %d",
					ra[i-1], rb[j-1], i, j, i-1, j, dp[i-1][j], i, j-1, dp[i][j-1], dp[i][j]),
				cur, trace.Cells(trace.RoleComparing, trace.Cell{Row: i - 1, Col: j}, trace.Cell{Row: i, Col: j - 1}))
		}
	}

	// 2) Backtrack from (n, m).
	var result []rune
	i, j := n, m
	for i > 0 && j > 0 {
		from := trace.Cell{Row: i, Col: j}
		var desc string
		switch {
		case ra[i-1] == rb[j-1]:
			result = append([]rune{ra[i-1]}, result...)
			st.Trail = append(st.Trail, Move{Cell: from, Dir: Diagonal})
			desc = fmt.Sprintf("(%d,%d) '%c' matches: keep it and move ↖, subsequence so far %q", i, j, ra[i-1], string(result))
			i, j = i-1, j-1
		case dp[i-1][j] >= dp[i][j-1]:
			st.Trail = append(st.Trail, Move{Cell: from, Dir: Up})
			desc = fmt.Sprintf("(%d,%d) no match, dp[%d][%d]=%d ≥ dp[%d][%d]=%d: move ↑", i, j, i-1, j, dp[i-1][j], i, j-1, dp[i][j-1])
			i--
		default:
			st.Trail = append(st.Trail, Move{Cell: from, Dir: Left})
			desc = fmt.Sprintf("(%d,%d) no match, dp[%d][%d]=%d < dp[%d][%d]=%d: move ←", i, j, i-1, j, dp[i-1][j], i, j-1, dp[i][j-1])
			j--
		}
		st.Result = string(result)
		rec.Record(st, desc, trace.Cells(trace.RoleCurrent, trace.Cell{Row: i, Col: j}), trace.Cells(trace.RolePath, trailCells(st.Trail)...))
	}

	return rec.Finish(st,
		fmt.Sprintf("longest common subsequence %q of length %d", st.Result, dp[n][m]),
		trace.Cells(trace.RolePath, trailCells(st.Trail)...)), nil
}

func trailCells(trail []Move) []trace.Cell {
	out := make([]trace.Cell, len(trail))
	for k, mv := range trail {
		out[k] = mv.Cell
	}

	return out
}
