package trace

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// NewGrid allocates a rows×cols table of zero values.
func NewGrid[T any](rows, cols int) [][]T {
	g := make([][]T, rows)
	for i := range g {
		g[i] = make([]T, cols)
	}

	return g
}

// CloneGrid deep-copies a 2-D table; row slices are never shared.
func CloneGrid[T any](g [][]T) [][]T {
	if g == nil {
		return nil
	}
	out := make([][]T, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}

	return out
}

// CheckIndices reports an error if any index of h falls outside [0, n).
func CheckIndices(h Highlight, n int) error {
	for _, i := range h.Indices {
		if i < 0 || i >= n {
			return errors.Newf("index %d out of range [0,%d)", i, n)
		}
	}

	return nil
}

// CheckCells reports an error if any cell of h falls outside the table.
func CheckCells[T any](h Highlight, table [][]T) error {
	for _, c := range h.Cells {
		if c.Row < 0 || c.Row >= len(table) || c.Col < 0 || c.Col >= len(table[c.Row]) {
			return errors.Newf("cell (%d,%d) out of table bounds", c.Row, c.Col)
		}
	}

	return nil
}
