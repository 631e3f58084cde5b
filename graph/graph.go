package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/fibheap"
)

// Graph owns a fixed set of vertices and the directed weighted arcs between
// them. Vertices are addressed by index in [0, Order).
//
// A Graph is not safe for concurrent use: shortest-path queries keep
// transient state (distances, usability flags, the arc overlay) on the
// graph itself, scoped to one in-flight query and fully restored before the
// query returns. Synchronize externally if a Graph is shared.
type Graph struct {
	vertices []*Vertex
	heap     fibheap.Heap[*Vertex] // vertex queue reused across Dijkstra runs

	// excluded is the overlay of arcs temporarily removed during a spur
	// search. Relaxation consults it instead of mutating arc weights, so
	// restoring is a single map clear.
	excluded map[*Arc]struct{}
}

// New allocates a graph with order vertices, indexed 0..order-1, and no
// arcs. order must not be negative. Complexity: O(order).
func New(order int) *Graph {
	if order < 0 {
		panic(fmt.Sprintf("graph: negative order %d", order))
	}

	g := &Graph{
		vertices: make([]*Vertex, order),
		excluded: make(map[*Arc]struct{}),
	}
	for i := range g.vertices {
		g.vertices[i] = &Vertex{id: i, usable: true}
	}

	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Vertex returns the vertex with the given index.
// It panics if the index is out of range.
func (g *Graph) Vertex(i int) *Vertex { return g.vertices[i] }

// AddArc adds a directed arc tail→head with the given weight and returns it.
//
// Weights must be finite and non-negative (ErrBadWeight): the shortest-path
// queries are standard Dijkstra and validating here keeps the query paths
// free of per-run weight scans. Parallel arcs and self-loops are permitted;
// Dijkstra simply never relaxes a self-loop to a shorter distance.
// Complexity: O(1).
func (g *Graph) AddArc(tail, head int, weight float64, opts ...ArcOption) (*Arc, error) {
	if tail < 0 || tail >= len(g.vertices) {
		return nil, fmt.Errorf("%w: tail %d", ErrVertexNotFound, tail)
	}
	if head < 0 || head >= len(g.vertices) {
		return nil, fmt.Errorf("%w: head %d", ErrVertexNotFound, head)
	}
	// The negated comparison also rejects NaN.
	if !(weight >= 0) || math.IsInf(weight, 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	t := g.vertices[tail]
	a := &Arc{Tail: t, Head: g.vertices[head], Weight: weight}
	for _, opt := range opts {
		opt(a)
	}

	a.next = t.firstArc
	t.firstArc = a

	return a, nil
}

// excludeArc hides a from relaxation until restoreArcs.
func (g *Graph) excludeArc(a *Arc) { g.excluded[a] = struct{}{} }

// restoreArcs drops every temporary arc exclusion in one pass.
func (g *Graph) restoreArcs() { clear(g.excluded) }
