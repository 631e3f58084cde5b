package fibheap

import (
	"errors"
	"fmt"
)

// ErrCorrupt is the sentinel wrapped by every Check failure.
var ErrCorrupt = errors.New("fibheap: structural invariant violated")

// Check verifies the heap's structural invariants and returns a wrapped
// ErrCorrupt describing the first violation found, or nil.
//
// Verified invariants:
//
//   - every sibling ring is closed and its next/prev links agree;
//   - a node's degree equals the length of its child ring;
//   - heap order: no child has priority below its parent's;
//   - roots carry no parent link and are never marked;
//   - the total entity count matches Len();
//   - tree depth stays below MaxDegree.
//
// Check is a debug utility, not part of normal operation: a correct heap
// never trips it. The traversal is iterative (explicit stack), so corrupt
// inputs cannot overflow the call stack. O(n).
func (h *Heap[T]) Check() error {
	var none T
	if h.min == none {
		if h.size != 0 {
			return fmt.Errorf("%w: empty heap reports Len %d", ErrCorrupt, h.size)
		}

		return nil
	}

	type frame struct {
		ring  T // any node of the ring to scan
		owner T // parent of the ring, none for the root ring
		depth int
	}

	total := 0
	stack := []frame{{ring: h.min, owner: none, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth >= MaxDegree {
			return fmt.Errorf("%w: tree depth %d exceeds MaxDegree", ErrCorrupt, f.depth)
		}

		ringLen := 0
		x := f.ring
		for {
			n := x.HeapNode()

			// Ring consistency: neighbors must point back at x.
			if n.next == none || n.prev == none {
				return fmt.Errorf("%w: node with nil sibling link", ErrCorrupt)
			}
			if n.next.HeapNode().prev != x || n.prev.HeapNode().next != x {
				return fmt.Errorf("%w: sibling links disagree", ErrCorrupt)
			}
			if n.parent != f.owner {
				return fmt.Errorf("%w: node parent does not match owning ring", ErrCorrupt)
			}
			if f.owner == none {
				if n.marked {
					return fmt.Errorf("%w: marked root", ErrCorrupt)
				}
			} else if n.priority < f.owner.HeapNode().priority {
				return fmt.Errorf("%w: child priority %v below parent priority %v",
					ErrCorrupt, n.priority, f.owner.HeapNode().priority)
			}
			if f.owner == none && n.priority < h.min.HeapNode().priority {
				return fmt.Errorf("%w: root priority %v below min %v",
					ErrCorrupt, n.priority, h.min.HeapNode().priority)
			}

			childLen := 0
			if n.child != none {
				if n.child == x {
					return fmt.Errorf("%w: node is its own child", ErrCorrupt)
				}
				c := n.child
				for {
					childLen++
					if childLen > h.size {
						return fmt.Errorf("%w: unclosed child ring", ErrCorrupt)
					}
					c = c.HeapNode().next
					if c == n.child {
						break
					}
				}
				stack = append(stack, frame{ring: n.child, owner: x, depth: f.depth + 1})
			}
			if childLen != n.degree {
				return fmt.Errorf("%w: degree %d but %d children", ErrCorrupt, n.degree, childLen)
			}

			ringLen++
			total++
			if total > h.size {
				return fmt.Errorf("%w: more reachable entities than Len %d", ErrCorrupt, h.size)
			}

			x = n.next
			if x == f.ring {
				break
			}
		}
	}

	if total != h.size {
		return fmt.Errorf("%w: %d reachable entities, Len reports %d", ErrCorrupt, total, h.size)
	}

	return nil
}
