package fibheap

import (
	"fmt"
	"io"
)

// WriteDOT renders the heap topology as a Graphviz digraph for visual
// debugging. label must return a unique DOT identifier per entity. Nodes of
// equal tree depth share a rank, sibling rings are drawn with dashed back
// edges, parent/child links in blue, and the minimum root is filled red.
//
// The traversal is iterative; it never recurses. Diagnostic only.
func (h *Heap[T]) WriteDOT(w io.Writer, label func(T) string) error {
	var none T

	if _, err := fmt.Fprintf(w, "digraph G {\nranksep=.5; size = \"10,5\";\nnode [shape=box,width=0.8,height=0.3];\n"); err != nil {
		return err
	}

	if h.min != none {
		type frame struct {
			ring  T
			depth int
		}

		// Group entity labels by depth so each depth becomes one rank.
		var levels [][]string
		stack := []frame{{ring: h.min, depth: 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(levels) <= f.depth {
				levels = append(levels, nil)
			}
			x := f.ring
			for {
				n := x.HeapNode()
				levels[f.depth] = append(levels[f.depth], label(x))
				if n.child != none {
					stack = append(stack, frame{ring: n.child, depth: f.depth + 1})
				}
				x = n.next
				if x == f.ring {
					break
				}
			}
		}

		for depth, names := range levels {
			if _, err := fmt.Fprintf(w, "{ rank=same;\n"); err != nil {
				return err
			}
			for i, name := range names {
				if depth == 0 && i == 0 {
					_, err := fmt.Fprintf(w, "%s [style=filled, fillcolor=red]; ", name)
					if err != nil {
						return err
					}
				} else if _, err := fmt.Fprintf(w, "%s; ", name); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "\n}\n"); err != nil {
				return err
			}
		}

		// Edges: sibling rings plus parent/child links, again iteratively.
		stack = stack[:0]
		stack = append(stack, frame{ring: h.min})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := f.ring
			for {
				n := x.HeapNode()
				if err := writeSiblings(w, label(x), label(n.next)); err != nil {
					return err
				}
				if n.child != none {
					c := n.child
					for {
						_, err := fmt.Fprintf(w, "\t%s->%s [color=blue];\n\t%s->%s [color=blue, style=dashed];\n",
							label(x), label(c), label(c), label(x))
						if err != nil {
							return err
						}
						c = c.HeapNode().next
						if c == n.child {
							break
						}
					}
					stack = append(stack, frame{ring: n.child})
				}
				x = n.next
				if x == f.ring {
					break
				}
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")

	return err
}

func writeSiblings(w io.Writer, prev, next string) error {
	_, err := fmt.Fprintf(w, "\t%s->%s;\n\t%s->%s [weight=0.1,style=dashed];\n", prev, next, next, prev)

	return err
}
