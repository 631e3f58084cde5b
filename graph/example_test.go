// Package graph_test provides runnable examples for the shortest-path and
// k-shortest-paths queries.
package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/graph"
)

// ExampleGraph_ShortestPath computes a single shortest path on the
// four-vertex diamond graph.
func ExampleGraph_ShortestPath() {
	// 1) Allocate four vertices, indexed 0..3.
	g := graph.New(4)
	// 2) Wire the diamond: two ways from 0 to 3 through 1 and 2.
	g.AddArc(0, 1, 1)
	g.AddArc(0, 2, 5)
	g.AddArc(1, 2, 1)
	g.AddArc(1, 3, 3)
	g.AddArc(2, 3, 1)

	// 3) Query. A nil path (with nil error) would mean "unreachable".
	p, err := g.ShortestPath(0, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s weight=%g\n", p, p.Weight())
	// Output: 0 -> 1(1) -> 2(2) -> 3(3) weight=3
}

// ExampleGraph_KShortestPaths ranks the three loopless 0→3 paths of the
// same diamond by total weight.
func ExampleGraph_KShortestPaths() {
	g := graph.New(4)
	g.AddArc(0, 1, 1)
	g.AddArc(0, 2, 5)
	g.AddArc(1, 2, 1)
	g.AddArc(1, 3, 3)
	g.AddArc(2, 3, 1)

	paths, err := g.KShortestPaths(0, 3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// 0 -> 1(1) -> 2(2) -> 3(3)
	// 0 -> 1(1) -> 3(4)
	// 0 -> 2(5) -> 3(6)
}
