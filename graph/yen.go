package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/fibheap"
)

// KShortestPaths returns up to k loopless paths from source to target in
// non-decreasing order of total weight, using Yen's algorithm. The first
// path is the true shortest path. Fewer than k loopless paths may exist, in
// which case the result is simply shorter — that is not an error.
//
// Relative order among equal-weight paths is unspecified. Loop-freedom is
// enforced during each spur search through the vertex-usability gates, not
// by filtering afterwards.
//
// Complexity: O(k·V·(E + V log V)) — up to V deviation points per accepted
// path, each costing one Dijkstra run.
func (g *Graph) KShortestPaths(source, target, k int) ([]*Path, error) {
	if source < 0 || source >= len(g.vertices) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if target < 0 || target >= len(g.vertices) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPathCount, k)
	}

	t := g.vertices[target]

	// ranking orders candidate paths by total weight; its minimum is always
	// the next accepted path.
	ranking := fibheap.New[*Path]()

	var accepted []*Path
	for minPath := g.shortestPath(g.vertices[source], t); minPath != nil; minPath = nextCandidate(ranking, accepted) {
		accepted = append(accepted, minPath)
		if len(accepted) >= k {
			break
		}

		// Every node of the newest accepted path is a potential deviation
		// point for the next-best candidate.
		for i := range minPath.steps {
			if cand := g.spurCandidate(accepted, minPath, i, t); cand != nil {
				ranking.Insert(cand, cand.Weight())
			}
		}
	}

	return accepted, nil
}

// nextCandidate pops ranked candidates until one differs from every
// accepted path. The arc exclusions make regenerating an accepted path
// impossible, but a candidate still waiting in the heap can be generated a
// second time from a later accepted path that shares its root prefix; the
// duplicate surfaces here and is dropped.
func nextCandidate(ranking *fibheap.Heap[*Path], accepted []*Path) *Path {
	for {
		cand, ok := ranking.PopMin()
		if !ok {
			return nil
		}
		if !containsPath(accepted, cand) {
			return cand
		}
	}
}

// containsPath reports whether any of paths traverses the same arc
// sequence as p.
func containsPath(paths []*Path, p *Path) bool {
	for _, q := range paths {
		if q.sameArcs(p) {
			return true
		}
	}

	return false
}

// spurCandidate searches for an alternative continuation of base deviating
// at step i: it blocks the root path's vertices and the continuations every
// accepted path takes out of that same prefix, runs Dijkstra from the
// deviation arc's tail, and merges root and spur into one candidate.
//
// Returns nil when no spur path exists. All vertex-usability and arc
// overlay overrides are restored before returning, on every path out.
func (g *Graph) spurCandidate(accepted []*Path, base *Path, i int, t *Vertex) *Path {
	root := base.prefix(i)
	end := base.steps[i].Arc

	// Block the root path's own vertices so the spur cannot loop back
	// through them; end.Tail stays usable as the spur origin.
	root.setUsable(false)
	defer root.setUsable(true)

	// Exclude the deviation arc itself plus the arc each accepted path uses
	// to leave this prefix, so no accepted path can be regenerated.
	g.excludeArc(end)
	defer g.restoreArcs()
	for _, a := range accepted {
		if dev := a.deviationArc(root); dev != nil {
			g.excludeArc(dev)
		}
	}

	spur := g.shortestPath(end.Tail, t)
	if spur == nil {
		return nil
	}

	root.merge(spur)

	return root
}
