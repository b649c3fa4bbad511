package knapsack

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// Greedy traces the ratio-greedy baseline: sort items by value/weight and
// take each whole item that still fits, until capacity runs out.
//
// It is a pedagogical contrast to Solve and is NOT optimal for 0/1 knapsack.
func Greedy(items []Item, capacity int) (*trace.Trace[GreedyState], error) {
	if err := validate(items, capacity); err != nil {
		return nil, err
	}
	st := GreedyState{
		Selected:  make([]bool, len(items)),
		Remaining: capacity,
	}
	rec := trace.NewRecorder(st,
		fmt.Sprintf("greedy baseline (not guaranteed optimal for 0/1 knapsack): %d items, capacity %d", len(items), capacity))

	// 1) Sort by ratio, ties keep input order. vₐ·w_b vs v_b·wₐ avoids floats.
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		l, r := items[a].Value*items[b].Weight, items[b].Value*items[a].Weight
		switch {
		case l > r:
			return -1
		case l < r:
			return 1
		default:
			return 0
		}
	})
	st.Order = order
	rec.Record(st, fmt.Sprintf("greedy baseline: sort items by value/weight ratio (descending): order %v", order),
		trace.Indices(trace.RoleRange, order...))

	// 2) Consider items in ratio order while capacity remains.
	for _, i := range order {
		if st.Remaining == 0 {
			break
		}
		it := items[i]
		ratio := float64(it.Value) / float64(it.Weight)
		cur := trace.Indices(trace.RoleCurrent, i)
		if it.Weight > st.Remaining {
			rec.Record(st,
				fmt.Sprintf("greedy baseline: skip item %d (v=%d, w=%d, ratio %.2f): weight exceeds remaining capacity %d",
					i, it.Value, it.Weight, ratio, st.Remaining),
				cur, trace.Indices(trace.RoleSelected, st.SelectedItems()...))

			continue
		}
		st.Selected[i] = true
		st.Remaining -= it.Weight
		st.TotalValue += it.Value
		st.TotalWeight += it.Weight
		rec.Record(st,
			fmt.Sprintf("greedy baseline: take item %d (v=%d, w=%d, ratio %.2f): remaining capacity %d",
				i, it.Value, it.Weight, ratio, st.Remaining),
			cur, trace.Indices(trace.RoleSelected, st.SelectedItems()...))
	}

	return rec.Finish(st,
		fmt.Sprintf("greedy baseline total value %d with weight %d/%d using item indices %v (not guaranteed optimal)",
			st.TotalValue, st.TotalWeight, capacity, st.SelectedItems()),
		trace.Indices(trace.RoleSelected, st.SelectedItems()...)), nil
}
