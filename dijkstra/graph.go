package dijkstra

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
)

// Edge is a weighted arc From→To.
type Edge struct {
	From, To string
	Weight   int64
}

// Graph is a small weighted adjacency map. Undirected graphs store every
// edge in both directions. Graph is not safe for concurrent mutation.
type Graph struct {
	directed bool
	adj      map[string]map[string]int64
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected makes AddEdge store one-way arcs only.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// NewGraph returns an empty graph, undirected by default.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string]map[string]int64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromAdjacency builds a directed graph from adj[from][to] = weight.
// Vertices that only appear as targets are added too.
func FromAdjacency(adj map[string]map[string]int64) *Graph {
	g := NewGraph(WithDirected())
	for from, row := range adj {
		g.ensure(from)
		for to, w := range row {
			g.ensure(to)
			g.adj[from][to] = w
		}
	}

	return g
}

// AddVertex adds an isolated vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensure(id)

	return nil
}

// AddEdge adds (or overwrites) the edge from→to with the given weight,
// creating missing vertices. Weights are validated by Trace, not here.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return errors.Wrapf(ErrEmptyVertexID, "edge %q→%q", from, to)
	}
	g.ensure(from)
	g.ensure(to)
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns every vertex ID in sorted order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns the outgoing edges of id sorted by destination.
func (g *Graph) Neighbors(id string) []Edge {
	row := g.adj[id]
	out := make([]Edge, 0, len(row))
	for to, w := range row {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	slices.SortFunc(out, func(a, b Edge) int { return cmp.Compare(a.To, b.To) })

	return out
}

// Edges returns every stored arc, ordered by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, v := range g.Vertices() {
		out = append(out, g.Neighbors(v)...)
	}

	return out
}

func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}
