package graph

import (
	"fmt"
	"math"
)

// unreached is the initial priority of every vertex entering the queue.
var unreached = math.Inf(1)

// ShortestPath computes a minimum-weight path from source to target using
// Dijkstra's algorithm with exact decrease-key relaxation.
//
// Returns (nil, nil) when target is unreachable from source: the absence of
// a path is a result, not an error. Errors are reserved for caller bugs
// (vertex index out of range).
//
// Complexity: O(E + V log V) — each relaxation is an amortized O(1)
// decrease-key, each of the V extractions an amortized O(log V) pop.
func (g *Graph) ShortestPath(source, target int) (*Path, error) {
	if source < 0 || source >= len(g.vertices) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if target < 0 || target >= len(g.vertices) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	return g.shortestPath(g.vertices[source], g.vertices[target]), nil
}

// shortestPath runs Dijkstra between two vertices, honoring the current
// usability gates and arc overlay. Callers guarantee s and t are usable.
func (g *Graph) shortestPath(s, t *Vertex) *Path {
	h := &g.heap
	h.Clear(false)

	// Every usable vertex enters the queue unreached; unusable vertices are
	// excluded from both the population and relaxation, which is how Yen's
	// spur searches carve out a sub-graph without touching the arc set.
	for _, v := range g.vertices {
		if v.usable {
			h.Insert(v, unreached)
			v.pathArc = nil
		}
	}

	h.DecreasePriority(s, 0)

	for !h.Empty() {
		u, _ := h.PopMin()
		// An unreached minimum means every remaining vertex is disconnected
		// from the source.
		if u == t || math.IsInf(u.Priority(), 1) {
			break
		}

		for a := u.firstArc; a != nil; a = a.next {
			if _, off := g.excluded[a]; off {
				continue
			}
			v := a.Head
			if !v.usable {
				continue
			}
			if w := u.Priority() + a.Weight; w < v.Priority() {
				h.DecreasePriority(v, w)
				v.pathArc = a
			}
		}
	}

	h.Clear(false)

	if math.IsInf(t.Priority(), 1) {
		return nil
	}

	return pathTo(t)
}
