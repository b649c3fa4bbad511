// Package dijkstra_test provides runnable examples of the traced search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/dijkstra"
)

// ExampleTrace walks a triangle graph and prints the recorded steps.
func ExampleTrace() {
	// 1) Build an undirected weighted triangle.
	g := dijkstra.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	// 2) Trace A → C.
	tr, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("C"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Print every step description.
	for _, s := range tr.Steps() {
		fmt.Println(s.Index, s.Description)
	}
	// Output:
	// 0 initialize: dist[A]=0, every other distance is ∞ (target C)
	// 1 finalize A with distance 0
	// 2 relax A→B (w=1): 0+1=1 < ∞, dist[B] improved
	// 3 relax A→C (w=5): 0+5=5 < ∞, dist[C] improved
	// 4 finalize B with distance 1
	// 5 relax B→C (w=2): 1+2=3 < 5, dist[C] improved
	// 6 finalize C with distance 3
	// 7 shortest path A → B → C with total distance 3
}

// ExampleTrace_cityRoute finds the fastest drive between two intersections
// while one road (C–D) is closed.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]    <-- C–D is closed
//	  |          \10
//	5 |          [E]
//	  |            \3
//	 [D]----6-----[F]
func ExampleTrace_cityRoute() {
	const closed = 1 << 31

	g := dijkstra.NewGraph()
	for _, r := range []struct {
		u, v string
		t    int64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "D", closed}, {"C", "E", 10}, {"D", "F", 6}, {"E", "F", 3},
	} {
		_ = g.AddEdge(r.u, r.v, r.t)
	}

	tr, err := dijkstra.Trace(g,
		dijkstra.Source("A"), dijkstra.Target("F"),
		dijkstra.WithInfEdgeThreshold(closed))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tr.Last().Description)
	fmt.Println(tr.Last().Snapshot.Path)
	// Output:
	// shortest path A → C → B → D → F with total distance 14
	// [A C B D F]
}
