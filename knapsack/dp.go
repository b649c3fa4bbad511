package knapsack

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Solve traces the 0/1 knapsack dynamic program over items and capacity.
// The terminal snapshot carries the optimal selection and its totals.
func Solve(items []Item, capacity int) (*trace.Trace[DPState], error) {
	if err := validate(items, capacity); err != nil {
		return nil, err
	}
	n := len(items)
	st := DPState{
		Table:    trace.NewGrid[int](n+1, capacity+1),
		Selected: make([]bool, n),
	}
	rec := trace.NewRecorder(st, fmt.Sprintf("initialize a %d×%d table with zeros for %d items, capacity %d",
		n+1, capacity+1, n, capacity))

	// 1) Fill the table row by row.
	dp := st.Table
	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 1; w <= capacity; w++ {
			cur := trace.Cells(trace.RoleCurrent, trace.Cell{Row: i, Col: w})
			exclude := dp[i-1][w]
			if it.Weight > w {
				dp[i][w] = exclude
				rec.Record(st,
					fmt.Sprintf("item %d (v=%d, w=%d) does not fit in capacity %d: dp[%d][%d] = dp[%d][%d] = %d",
						i, it.Value, it.Weight, w, i, w, i-1, w, exclude),
					cur, trace.Cells(trace.RoleComparing, trace.Cell{Row: i - 1, Col: w}))

				continue
			}
			include := dp[i-1][w-it.Weight] + it.Value
			formula := "exclude"
			dp[i][w] = exclude
			if include > exclude {
				formula = "include"
				dp[i][w] = include
			}
			rec.Record(st,
				fmt.Sprintf("dp[%d][%d] = max(exclude dp[%d][%d]=%d, include dp[%d][%d]+%d=%d) = %d (%s)",
					i, w, i-1, w, exclude, i-1, w-it.Weight, it.Value, include, dp[i][w], formula),
				cur, trace.Cells(trace.RoleComparing,
					trace.Cell{Row: i - 1, Col: w}, trace.Cell{Row: i - 1, Col: w - it.Weight}))
		}
	}

	// 2) Backtrack from dp[n][capacity] to row 0.
	w := capacity
	for i := n; i >= 1; i-- {
		it := items[i-1]
		cells := []trace.Highlight{
			trace.Cells(trace.RoleCurrent, trace.Cell{Row: i, Col: w}),
			trace.Cells(trace.RoleComparing, trace.Cell{Row: i - 1, Col: w}),
		}
		if dp[i][w] != dp[i-1][w] {
			st.Selected[i-1] = true
			st.TotalValue += it.Value
			st.TotalWeight += it.Weight
			desc := fmt.Sprintf("dp[%d][%d]=%d ≠ dp[%d][%d]=%d: item %d selected, capacity %d → %d",
				i, w, dp[i][w], i-1, w, dp[i-1][w], i, w, w-it.Weight)
			w -= it.Weight
			rec.Record(st, desc, append(cells, trace.Indices(trace.RoleSelected, st.SelectedItems()...))...)

			continue
		}
		rec.Record(st,
			fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d: item %d not selected", i, w, i-1, w, dp[i][w], i),
			append(cells, trace.Indices(trace.RoleSelected, st.SelectedItems()...))...)
	}

	return rec.Finish(st,
		fmt.Sprintf("optimal value %d with weight %d/%d using item indices %v",
			st.TotalValue, st.TotalWeight, capacity, st.SelectedItems()),
		trace.Cells(trace.RoleCurrent, trace.Cell{Row: 0, Col: w}),
		trace.Indices(trace.RoleSelected, st.SelectedItems()...)), nil
}
