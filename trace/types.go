package trace

import "slices"

// Role names what a highlighted position is doing in a step.
type Role string

// Roles used across the algorithm families. Families are free to use any
// subset; the presentation layer maps roles to colors.
const (
	RoleComparing Role = "comparing"
	RoleSwapping  Role = "swapping"
	RolePivot     Role = "pivot"
	RoleHeapRoot  Role = "heap-root"
	RoleSorted    Role = "sorted"
	RoleAuxiliary Role = "auxiliary"
	RoleRange     Role = "range"
	RoleBucket    Role = "bucket"
	RoleCurrent   Role = "current"
	RoleCandidate Role = "candidate"
	RoleSelected  Role = "selected"
	RoleVisited   Role = "visited"
	RoleFrontier  Role = "frontier"
	RolePath      Role = "path"
)

// Cell addresses one entry of a 2-D table.
type Cell struct {
	Row, Col int
}

// Highlight is a named set of positions inside a step's snapshot.
// A family fills whichever position kind fits its snapshot:
// Indices for arrays and tree arenas, Cells for DP tables, Keys for graphs.
type Highlight struct {
	Role    Role
	Indices []int
	Cells   []Cell
	Keys    []string
}

// Indices builds an index-based highlight.
func Indices(role Role, idx ...int) Highlight {
	return Highlight{Role: role, Indices: idx}
}

// Cells builds a DP-cell highlight.
func Cells(role Role, cells ...Cell) Highlight {
	return Highlight{Role: role, Cells: cells}
}

// Keys builds a key-based highlight (e.g. graph vertex IDs).
func Keys(role Role, keys ...string) Highlight {
	return Highlight{Role: role, Keys: keys}
}

// Empty reports whether h carries no position at all.
func (h Highlight) Empty() bool {
	return len(h.Indices) == 0 && len(h.Cells) == 0 && len(h.Keys) == 0
}

func (h Highlight) clone() Highlight {
	return Highlight{
		Role:    h.Role,
		Indices: slices.Clone(h.Indices),
		Cells:   slices.Clone(h.Cells),
		Keys:    slices.Clone(h.Keys),
	}
}

// Snapshot is the constraint every primary snapshot type satisfies:
// Clone must return a deep copy sharing no mutable memory with the receiver.
type Snapshot[S any] interface {
	Clone() S
}

// HighlightChecker is implemented by snapshot types that can verify that a
// highlight only references positions that exist in the snapshot.
type HighlightChecker interface {
	CheckHighlight(h Highlight) error
}

// Step is one immutable frame of a trace.
type Step[S any] struct {
	// Index is the position of the step in its trace.
	Index int

	// Snapshot is the deep-copied algorithm state at this instant.
	// It is owned by the trace; clone it before mutating.
	Snapshot S

	// Highlights lists the active positions of this step, in emission order.
	Highlights []Highlight

	// Description explains the transition that produced this step.
	Description string

	// Terminal is true only for the final step.
	Terminal bool
}

// Highlight returns the first highlight with the given role.
func (s Step[S]) Highlight(role Role) (Highlight, bool) {
	for _, h := range s.Highlights {
		if h.Role == role {
			return h, true
		}
	}

	return Highlight{}, false
}
