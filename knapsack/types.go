package knapsack

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

var (
	// ErrBadCapacity indicates a non-positive capacity.
	ErrBadCapacity = trace.InvalidInput(errors.New("knapsack: capacity must be positive"))

	// ErrNoItems indicates an empty item list.
	ErrNoItems = trace.InvalidInput(errors.New("knapsack: at least one item is required"))

	// ErrBadItem indicates an item with weight ≤ 0 or value < 0.
	ErrBadItem = trace.InvalidInput(errors.New("knapsack: item weight must be positive and value non-negative"))
)

// Item is one candidate for the knapsack.
type Item struct {
	Value  int
	Weight int
}

// validate checks the shared preconditions of Solve and Greedy.
func validate(items []Item, capacity int) error {
	if capacity <= 0 {
		return errors.Wrapf(ErrBadCapacity, "capacity=%d", capacity)
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, it := range items {
		if it.Weight <= 0 || it.Value < 0 {
			return errors.Wrapf(ErrBadItem, "item %d (value=%d, weight=%d)", i, it.Value, it.Weight)
		}
	}

	return nil
}

// DPState is the snapshot of the dynamic-programming solver.
type DPState struct {
	// Table is the (n+1)×(capacity+1) DP table.
	Table [][]int

	// Selected marks the items chosen so far by backtracking.
	Selected []bool

	// TotalValue and TotalWeight sum the selected items.
	TotalValue  int
	TotalWeight int
}

// Clone returns a deep copy of s.
func (s DPState) Clone() DPState {
	return DPState{
		Table:       trace.CloneGrid(s.Table),
		Selected:    slices.Clone(s.Selected),
		TotalValue:  s.TotalValue,
		TotalWeight: s.TotalWeight,
	}
}

// CheckHighlight implements trace.HighlightChecker: cells address Table,
// indices address items.
func (s DPState) CheckHighlight(h trace.Highlight) error {
	if err := trace.CheckCells(h, s.Table); err != nil {
		return err
	}

	return trace.CheckIndices(h, len(s.Selected))
}

// SelectedItems returns the indices of the selected items in ascending order.
func (s DPState) SelectedItems() []int { return selectedIndices(s.Selected) }

// GreedyState is the snapshot of the greedy baseline.
type GreedyState struct {
	// Order lists item indices by decreasing value/weight ratio; empty
	// until the sort step.
	Order []int

	// Selected marks the items taken.
	Selected []bool

	// Remaining is the capacity left.
	Remaining int

	// TotalValue and TotalWeight sum the taken items.
	TotalValue  int
	TotalWeight int
}

// Clone returns a deep copy of s.
func (s GreedyState) Clone() GreedyState {
	c := s
	c.Order = slices.Clone(s.Order)
	c.Selected = slices.Clone(s.Selected)

	return c
}

// CheckHighlight implements trace.HighlightChecker.
func (s GreedyState) CheckHighlight(h trace.Highlight) error {
	return trace.CheckIndices(h, len(s.Selected))
}

// SelectedItems returns the indices of the taken items in ascending order.
func (s GreedyState) SelectedItems() []int { return selectedIndices(s.Selected) }

func selectedIndices(sel []bool) []int {
	out := []int{}
	for i, ok := range sel {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
