package lcs

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// ErrEmptyString indicates that one or both inputs are empty.
var ErrEmptyString = trace.InvalidInput(errors.New("lcs: input strings must be non-empty"))

// Direction is a backtrack arrow.
type Direction int

const (
	// Diagonal: the runes matched and belong to the subsequence.
	Diagonal Direction = iota
	// Up: drop the last rune of a.
	Up
	// Left: drop the last rune of b.
	Left
)

// String renders the arrow.
func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "↖"
	case Up:
		return "↑"
	case Left:
		return "←"
	default:
		return "?"
	}
}

// Move is one backtrack arrow leaving Cell.
type Move struct {
	Cell trace.Cell
	Dir  Direction
}

// State is the LCS snapshot.
type State struct {
	// Table is the (n+1)×(m+1) DP table.
	Table [][]int

	// Trail lists the backtrack arrows taken so far, from (n,m) inwards.
	Trail []Move

	// Result is the recovered suffix of the subsequence; complete on the
	// terminal step.
	Result string
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Table:  trace.CloneGrid(s.Table),
		Trail:  slices.Clone(s.Trail),
		Result: s.Result,
	}
}

// CheckHighlight implements trace.HighlightChecker.
func (s State) CheckHighlight(h trace.Highlight) error {
	return trace.CheckCells(h, s.Table)
}
