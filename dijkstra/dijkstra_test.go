// Package dijkstra_test contains unit tests for the traced Dijkstra search:
// input validation, exact step sequences on small graphs, the no-path
// terminal outcome, determinism and snapshot isolation.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/trace"
)

// triangle builds the undirected graph A—B (1), B—C (2), A—C (5).
func triangle(t *testing.T) *dijkstra.Graph {
	t.Helper()
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestTrace_Validation(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.Trace(nil, dijkstra.Source("A"), dijkstra.Target("C"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Trace(g, dijkstra.Target("C"))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Trace(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrEmptyTarget)

	_, err = dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.True(t, trace.IsInvalidInput(err))

	require.NoError(t, g.AddEdge("C", "D", -4))
	tr, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("C"))
	assert.Nil(t, tr, "no partial trace on invalid input")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.True(t, trace.IsInvalidInput(err))
}

func TestWithInfEdgeThreshold_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestGraph_AddEdgeEmptyID(t *testing.T) {
	g := dijkstra.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B", 1), dijkstra.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex(""), dijkstra.ErrEmptyVertexID)
}

// ------------------------------------------------------------------------
// 2. Step sequences
// ------------------------------------------------------------------------

func TestTrace_Triangle(t *testing.T) {
	tr, err := dijkstra.Trace(triangle(t), dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	assert.Equal(t, []string{
		"initialize: dist[A]=0, every other distance is ∞ (target C)",
		"finalize A with distance 0",
		"relax A→B (w=1): 0+1=1 < ∞, dist[B] improved",
		"relax A→C (w=5): 0+5=5 < ∞, dist[C] improved",
		"finalize B with distance 1",
		"relax B→C (w=2): 1+2=3 < 5, dist[C] improved",
		"finalize C with distance 3",
		"shortest path A → B → C with total distance 3",
	}, tr.Descriptions())

	first := tr.First().Snapshot
	assert.Equal(t, int64(0), first.Dist["A"])
	assert.Equal(t, dijkstra.Infinity, first.Dist["C"])

	last := tr.Last().Snapshot
	assert.True(t, last.Reached())
	assert.Equal(t, []string{"A", "B", "C"}, last.Path)
	assert.Equal(t, int64(3), last.Dist["C"])

	// The step where dist[C] first improved still shows 5, later steps 3.
	assert.Equal(t, int64(5), tr.At(3).Snapshot.Dist["C"])
	assert.Equal(t, int64(3), tr.At(5).Snapshot.Dist["C"])
}

func TestTrace_NoImprovementAndTieBreak(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "C", 5))

	tr, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)

	// B and C tie at distance 1; B sorts first and is finalized first.
	assert.Equal(t, "finalize B with distance 1", tr.At(4).Description)
	assert.Equal(t, "relax B→C (w=5): 6 ≥ 1, no improvement", tr.At(5).Description)
	assert.Equal(t, []string{"A", "C"}, tr.Last().Snapshot.Path)
}

func TestTrace_NoPath(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("C"))

	tr, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err, "an unreachable target is a valid outcome")
	require.NoError(t, tr.Validate())

	last := tr.Last()
	assert.True(t, last.Terminal)
	assert.False(t, last.Snapshot.Reached())
	assert.Empty(t, last.Snapshot.Path)
	assert.Equal(t, "no path: C is unreachable from A (remaining nodes [C] have distance ∞)", last.Description)
}

func TestTrace_ImpassableEdge(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))

	tr, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("B"), dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)

	assert.Equal(t, "edge A→B (w=100) is impassable: skipped", tr.At(2).Description)
	assert.Equal(t, []string{"A", "C", "B"}, tr.Last().Snapshot.Path)
}

func TestTrace_DirectedAdjacency(t *testing.T) {
	g := dijkstra.FromAdjacency(map[string]map[string]int64{
		"S": {"A": 4, "B": 1},
		"B": {"A": 2},
		"A": {"T": 1},
	})
	tr, err := dijkstra.Trace(g, dijkstra.Source("S"), dijkstra.Target("T"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A", "T"}, tr.Last().Snapshot.Path)
	assert.Equal(t, int64(4), tr.Last().Snapshot.Dist["T"])

	// Arcs are one-way: T cannot reach S.
	back, err := dijkstra.Trace(g, dijkstra.Source("T"), dijkstra.Target("S"))
	require.NoError(t, err)
	assert.False(t, back.Last().Snapshot.Reached())
}

func TestTrace_SourceIsTarget(t *testing.T) {
	tr, err := dijkstra.Trace(triangle(t), dijkstra.Source("B"), dijkstra.Target("B"))
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"B"}, tr.Last().Snapshot.Path)
}

// ------------------------------------------------------------------------
// 3. Determinism and isolation
// ------------------------------------------------------------------------

func TestTrace_DeterministicAndIsolated(t *testing.T) {
	a, err := dijkstra.Trace(triangle(t), dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)
	b, err := dijkstra.Trace(triangle(t), dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)
	assert.Equal(t, a.Steps(), b.Steps())

	prev := a.At(2).Snapshot.Clone()
	a.At(3).Snapshot.Dist["B"] = 999
	a.At(3).Snapshot.Visited["C"] = true
	assert.Equal(t, prev, a.At(2).Snapshot)
	assert.Equal(t, int64(1), a.At(4).Snapshot.Dist["B"])
}
