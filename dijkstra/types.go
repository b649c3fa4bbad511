package dijkstra

import (
	"maps"
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Infinity is the tentative distance of a vertex not reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors. Input errors are marked as trace.ErrInvalidInput.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to Trace.
	ErrNilGraph = trace.InvalidInput(errors.New("dijkstra: graph is nil"))

	// ErrEmptySource indicates that no Source vertex was configured.
	ErrEmptySource = trace.InvalidInput(errors.New("dijkstra: source vertex ID is empty"))

	// ErrEmptyTarget indicates that no Target vertex was configured.
	ErrEmptyTarget = trace.InvalidInput(errors.New("dijkstra: target vertex ID is empty"))

	// ErrVertexNotFound indicates that Source or Target is not in the graph.
	ErrVertexNotFound = trace.InvalidInput(errors.New("dijkstra: vertex not found in graph"))

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = trace.InvalidInput(errors.New("dijkstra: negative edge weight encountered"))

	// ErrEmptyVertexID indicates an empty vertex ID passed to AddVertex/AddEdge.
	ErrEmptyVertexID = errors.New("dijkstra: vertex ID is empty")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would wall off every edge.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a traced search.
//
// Source           – starting vertex ID (required).
// Target           – vertex ID whose shortest path is reconstructed (required).
// InfEdgeThreshold – edges with weight ≥ this value are skipped as impassable.
// Default is Infinity (no walls).
type Options struct {
	Source           string
	Target           string
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Trace.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics if threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns Options with no endpoints and no impassable edges.
func DefaultOptions() Options {
	return Options{InfEdgeThreshold: Infinity}
}

// State is the primary snapshot of a Dijkstra step.
type State struct {
	// Dist maps every vertex to its tentative distance (Infinity if unreached).
	Dist map[string]int64

	// Prev maps a vertex to its predecessor on the best known path ("" if none).
	Prev map[string]string

	// Visited marks finalized vertices.
	Visited map[string]bool

	// Current is the vertex being expanded ("" before the first selection).
	Current string

	// Path is the reconstructed Source→Target path; set on the terminal
	// step only, empty when the target is unreachable.
	Path []string
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Dist:    maps.Clone(s.Dist),
		Prev:    maps.Clone(s.Prev),
		Visited: maps.Clone(s.Visited),
		Current: s.Current,
		Path:    slices.Clone(s.Path),
	}
}

// CheckHighlight implements trace.HighlightChecker: every key must be a
// vertex of the snapshot.
func (s State) CheckHighlight(h trace.Highlight) error {
	for _, k := range h.Keys {
		if _, ok := s.Dist[k]; !ok {
			return errors.Newf("unknown vertex %q", k)
		}
	}

	return nil
}

// Reached reports whether the terminal snapshot found a path.
func (s State) Reached() bool { return len(s.Path) > 0 }

// VisitedIDs returns the finalized vertices in ID order.
func (s State) VisitedIDs() []string {
	out := make([]string, 0, len(s.Visited))
	for id, ok := range s.Visited {
		if ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out
}
