package lps

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// ErrEmptyString indicates an empty input string.
var ErrEmptyString = trace.InvalidInput(errors.New("lps: input string must be non-empty"))

// State is the LPS snapshot.
type State struct {
	// Table is the n×n interval table; cells below the diagonal stay 0.
	Table [][]int

	// Prefix and Suffix hold the palindrome ends recovered so far.
	Prefix, Suffix string

	// Result is the full palindrome, set on the terminal step.
	Result string
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Table = trace.CloneGrid(s.Table)

	return c
}

// CheckHighlight implements trace.HighlightChecker. Indices address runes
// of the input, cells address the table.
func (s State) CheckHighlight(h trace.Highlight) error {
	if err := trace.CheckCells(h, s.Table); err != nil {
		return err
	}

	return trace.CheckIndices(h, len(s.Table))
}
