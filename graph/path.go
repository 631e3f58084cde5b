package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlpath/fibheap"
)

// Step is one hop of a Path: the arc taken plus the cumulative weight from
// the path's source to the arc's head.
type Step struct {
	Arc    *Arc
	Weight float64
}

// Path is an ordered sequence of arcs from a source to a target vertex.
//
// Path embeds fibheap.Node so that candidate paths can be ranked directly
// in a heap keyed by total weight (Yen's algorithm). A Path belongs to
// whichever algorithm step currently holds it; the queries in this package
// hand ownership to the caller with the result slice.
type Path struct {
	fibheap.Node[*Path]

	steps []Step
}

// Steps returns the path's hops in source→target order.
// The slice is the path's own backing storage; treat it as read-only.
func (p *Path) Steps() []Step { return p.steps }

// Len returns the number of arcs in the path.
func (p *Path) Len() int { return len(p.steps) }

// Weight returns the path's total weight; an empty path weighs 0.
func (p *Path) Weight() float64 {
	if len(p.steps) == 0 {
		return 0
	}

	return p.steps[len(p.steps)-1].Weight
}

// String renders the path as "0 -> 1(1) -> 3(4)", each hop annotated with
// its cumulative weight.
func (p *Path) String() string {
	var b strings.Builder
	for i, s := range p.steps {
		if i == 0 {
			fmt.Fprintf(&b, "%d -> %d(%g)", s.Arc.Tail.id, s.Arc.Head.id, s.Weight)
		} else {
			fmt.Fprintf(&b, " -> %d(%g)", s.Arc.Head.id, s.Weight)
		}
	}

	return b.String()
}

// pathTo reconstructs the path reaching t in the shortest-path tree left by
// the most recent Dijkstra run: pathArc links are walked backward from t,
// then reversed into forward order. Each step's cumulative weight is the
// head's final distance, so the path's Weight equals t's distance.
func pathTo(t *Vertex) *Path {
	p := &Path{}
	for v := t; v.pathArc != nil; v = v.pathArc.Tail {
		p.steps = append(p.steps, Step{Arc: v.pathArc, Weight: v.pathArc.Head.Priority()})
	}
	for i, j := 0, len(p.steps)-1; i < j; i, j = i+1, j-1 {
		p.steps[i], p.steps[j] = p.steps[j], p.steps[i]
	}

	return p
}

// prefix returns a copy of the first n steps — the "root path" up to a
// deviation point.
func (p *Path) prefix(n int) *Path {
	r := &Path{steps: make([]Step, n)}
	copy(r.steps, p.steps[:n])

	return r
}

// deviationArc reports the arc with which p continues past root, or nil if
// root is not a proper arc-wise prefix of p. Yen's algorithm uses it to
// exclude the continuations of already-accepted paths before a spur search,
// so a spur can never regenerate a path that is already accepted.
func (p *Path) deviationArc(root *Path) *Arc {
	if len(p.steps) <= len(root.steps) {
		return nil
	}
	for i := range root.steps {
		if p.steps[i].Arc != root.steps[i].Arc {
			return nil
		}
	}

	return p.steps[len(root.steps)].Arc
}

// sameArcs reports whether p and q traverse the same arc sequence.
func (p *Path) sameArcs(q *Path) bool {
	if len(p.steps) != len(q.steps) {
		return false
	}
	for i := range p.steps {
		if p.steps[i].Arc != q.steps[i].Arc {
			return false
		}
	}

	return true
}

// setUsable flips the usability gate of every vertex on p except the final
// arc's head, which stays usable as the spur search origin.
func (p *Path) setUsable(on bool) {
	for i, s := range p.steps {
		s.Arc.Tail.usable = on
		if i != len(p.steps)-1 {
			s.Arc.Head.usable = on
		}
	}
}

// merge appends spur to p, re-biasing the spur's cumulative weights by p's
// total weight. The merge is destructive: spur is emptied and must not be
// used afterwards.
func (p *Path) merge(spur *Path) {
	w := p.Weight()
	for i := range spur.steps {
		spur.steps[i].Weight += w
	}
	p.steps = append(p.steps, spur.steps...)
	spur.steps = nil
}
