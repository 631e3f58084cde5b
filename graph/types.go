// Package graph defines the Graph, Vertex, Arc and Path types and the
// sentinel errors shared by its shortest-path queries.
package graph

import (
	"errors"

	"github.com/katalvlaran/lvlpath/fibheap"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexNotFound indicates a vertex index outside [0, Order).
	ErrVertexNotFound = errors.New("graph: vertex index out of range")

	// ErrBadWeight indicates an arc weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("graph: arc weight must be finite and non-negative")

	// ErrBadPathCount indicates a non-positive k passed to KShortestPaths.
	ErrBadPathCount = errors.New("graph: k must be positive")
)

// Vertex is a node of a Graph, identified by a stable integer index.
//
// Vertex embeds fibheap.Node so that vertices enter the shortest-path heap
// directly; during a Dijkstra run Priority() doubles as the best known
// distance from the source. The remaining fields are transient per-query
// state owned by the algorithms in this package.
type Vertex struct {
	fibheap.Node[*Vertex]

	id       int
	firstArc *Arc // head of the singly-linked outgoing arc list
	pathArc  *Arc // arc leading to this vertex in the current shortest-path tree
	usable   bool // false while Yen's spur search temporarily carves this vertex out
}

// ID returns the vertex's stable index within its Graph.
func (v *Vertex) ID() int { return v.id }

// Arcs returns the vertex's outgoing arcs in traversal order
// (most recently added first).
func (v *Vertex) Arcs() []*Arc {
	var arcs []*Arc
	for a := v.firstArc; a != nil; a = a.next {
		arcs = append(arcs, a)
	}

	return arcs
}

// Arc is a directed weighted edge. Arcs are owned by their Graph and form a
// singly-linked list per tail vertex; there is no separate arc container.
type Arc struct {
	Tail   *Vertex
	Head   *Vertex
	Weight float64
	Data   any // opaque user payload, untouched by the algorithms

	next *Arc
}

// ArcOption configures an arc as it is added to a Graph.
type ArcOption func(*Arc)

// WithArcData attaches an opaque user payload to the arc.
func WithArcData(data any) ArcOption {
	return func(a *Arc) { a.Data = data }
}
