package dijkstra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// Trace runs Dijkstra's algorithm from Options.Source and records every step
// until Options.Target is finalized or the frontier is exhausted.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source and Target must be non-empty (ErrEmptySource, ErrEmptyTarget).
//  3. Both must exist in g (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// An unreachable Target is not an error: the terminal step carries an empty
// Path and a description saying the target cannot be reached.
func Trace(g *Graph, opts ...Option) (*trace.Trace[State], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate before any step is recorded.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if cfg.Target == "" {
		return nil, ErrEmptyTarget
	}
	for _, id := range []string{cfg.Source, cfg.Target} {
		if !g.HasVertex(id) {
			return nil, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "edge %s→%s weight=%d", e.From, e.To, e.Weight)
		}
	}

	// 3) Run.
	r := &runner{g: g, options: cfg, vertices: g.Vertices()}
	r.init()

	return r.process(), nil
}

// runner holds the mutable state for a single traced execution.
type runner struct {
	g        *Graph
	options  Options
	vertices []string // sorted; fixes selection tie-breaks and output order
	st       State
	rec      *trace.Recorder[State]
}

// init sets dist[v]=∞ for every v, dist[Source]=0 and records step 0.
func (r *runner) init() {
	n := len(r.vertices)
	r.st = State{
		Dist:    make(map[string]int64, n),
		Prev:    make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	for _, v := range r.vertices {
		r.st.Dist[v] = Infinity
		r.st.Prev[v] = ""
		r.st.Visited[v] = false
	}
	src := r.options.Source
	r.st.Dist[src] = 0
	r.rec = trace.NewRecorder(r.st,
		fmt.Sprintf("initialize: dist[%s]=0, every other distance is ∞ (target %s)", src, r.options.Target),
		trace.Keys(trace.RoleFrontier, src))
}

// process is the main loop: select, finalize, relax. It always returns a
// finished trace.
func (r *runner) process() *trace.Trace[State] {
	for {
		// 1) Select the unvisited vertex with strictly minimal distance.
		u, ok := r.selectMin()
		if !ok {
			return r.unreachable()
		}

		// 2) Finalize it.
		r.st.Visited[u] = true
		r.st.Current = u
		r.rec.Record(r.st,
			fmt.Sprintf("finalize %s with distance %d", u, r.st.Dist[u]),
			trace.Keys(trace.RoleCurrent, u), trace.Keys(trace.RoleVisited, r.st.VisitedIDs()...))

		// 3) Stop once the target is final.
		if u == r.options.Target {
			return r.reached()
		}

		// 4) Relax edges to unvisited neighbours.
		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the smallest finite distance.
// Ties keep the first vertex in ID order.
func (r *runner) selectMin() (string, bool) {
	best, bestDist, found := "", Infinity, false
	for _, v := range r.vertices {
		if r.st.Visited[v] {
			continue
		}
		if d := r.st.Dist[v]; d < bestDist {
			best, bestDist, found = v, d, true
		}
	}

	return best, found
}

// relax records one step per edge u→v to an unvisited v.
func (r *runner) relax(u string) {
	du := r.st.Dist[u]
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.st.Visited[v] {
			continue
		}
		cur := trace.Keys(trace.RoleCurrent, u)
		cand := trace.Keys(trace.RoleCandidate, v)
		if e.Weight >= r.options.InfEdgeThreshold {
			r.rec.Record(r.st, fmt.Sprintf("edge %s→%s (w=%d) is impassable: skipped", u, v, e.Weight), cur, cand)

			continue
		}
		nd := Infinity
		if e.Weight < Infinity-du {
			nd = du + e.Weight
		}
		old := r.st.Dist[v]
		if nd < old {
			r.st.Dist[v] = nd
			r.st.Prev[v] = u
			r.rec.Record(r.st,
				fmt.Sprintf("relax %s→%s (w=%d): %d+%d=%d < %s, dist[%s] improved", u, v, e.Weight, du, e.Weight, nd, formatDist(old), v),
				cur, cand, trace.Keys(trace.RoleFrontier, r.frontier()...))

			continue
		}
		r.rec.Record(r.st,
			fmt.Sprintf("relax %s→%s (w=%d): %s ≥ %s, no improvement", u, v, e.Weight, formatDist(nd), formatDist(old)),
			cur, cand)
	}
}

// frontier lists unvisited vertices with a finite tentative distance.
func (r *runner) frontier() []string {
	var out []string
	for _, v := range r.vertices {
		if !r.st.Visited[v] && r.st.Dist[v] != Infinity {
			out = append(out, v)
		}
	}

	return out
}

// reached reconstructs Source→Target through Prev and finishes the trace.
func (r *runner) reached() *trace.Trace[State] {
	var path []string
	for v := r.options.Target; v != ""; v = r.st.Prev[v] {
		path = append(path, v)
		if v == r.options.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.st.Path = path
	r.st.Current = ""

	return r.rec.Finish(r.st,
		fmt.Sprintf("shortest path %s with total distance %d", strings.Join(path, " → "), r.st.Dist[r.options.Target]),
		trace.Keys(trace.RolePath, path...))
}

// unreachable finishes the trace when the minimal tentative distance is ∞.
func (r *runner) unreachable() *trace.Trace[State] {
	var rest []string
	for _, v := range r.vertices {
		if !r.st.Visited[v] {
			rest = append(rest, v)
		}
	}
	r.st.Current = ""
	r.st.Path = nil

	return r.rec.Finish(r.st,
		fmt.Sprintf("no path: %s is unreachable from %s (remaining nodes %v have distance ∞)",
			r.options.Target, r.options.Source, rest),
		trace.Keys(trace.RoleVisited, r.st.VisitedIDs()...))
}

func formatDist(d int64) string {
	if d == Infinity {
		return "∞"
	}

	return strconv.FormatInt(d, 10)
}
