// Package fibheap implements a Fibonacci heap over intrusive, externally
// owned entities.
//
// Unlike container/heap, entities carry their own linkage (an embedded
// Node[T]); the heap never allocates per-element wrappers, and an entity
// handle stays valid for DecreasePriority for as long as the entity is in
// the heap. This is what makes decrease-key amortized O(1) and is the whole
// reason this package exists: Dijkstra and Yen's algorithm (package graph)
// decrease priorities far more often than they pop.
package fibheap

import "fmt"

// MaxDegree bounds the degree of any root after consolidation.
// A heap would need more than 2^MaxDegree entities to exceed it.
const MaxDegree = 64

// Node carries the intrusive heap linkage for one entity.
// Embed it (by value) into any type that should participate in a Heap:
//
//	type Task struct {
//		fibheap.Node[*Task]
//		// ...
//	}
//
// All fields are managed by the Heap; Insert fully re-initializes them, so
// an entity removed from one heap may be reinserted into the same or
// another heap instance.
type Node[T any] struct {
	next, prev    T // circular doubly-linked sibling ring; a lone node links to itself
	parent, child T // child is one arbitrary child, the head of the child ring
	degree        int
	priority      float64
	marked        bool // non-root only: lost a child since last becoming a child itself
}

// HeapNode returns the embedded linkage; it is what satisfies Item[T].
func (n *Node[T]) HeapNode() *Node[T] { return n }

// Priority reports the entity's current priority (lower is better).
// During Dijkstra this doubles as the best known distance from the source.
func (n *Node[T]) Priority() float64 { return n.priority }

// init resets every linkage field; self is the entity owning n.
func (n *Node[T]) init(self T, priority float64) {
	var none T
	n.next, n.prev = self, self
	n.parent, n.child = none, none
	n.degree = 0
	n.marked = false
	n.priority = priority
}

// Item is the capability an entity type must provide to live in a Heap:
// pointer identity (comparable) plus access to its embedded Node.
// Embedding Node[T] by value satisfies it automatically.
type Item[T any] interface {
	comparable
	HeapNode() *Node[T]
}

// Heap is a mergeable min-priority queue with amortized O(1) Insert and
// DecreasePriority and amortized O(log n) PopMin.
//
// The zero value is an empty heap ready for use. The heap does not own its
// entities: it only rewires their embedded Nodes. Not safe for concurrent
// use; callers needing that must synchronize externally.
type Heap[T Item[T]] struct {
	min     T
	size    int
	scratch [MaxDegree]T // degree-indexed root table, used during consolidation
}

// New returns an empty heap.
func New[T Item[T]]() *Heap[T] { return &Heap[T]{} }

// Empty reports whether the heap holds no entities.
func (h *Heap[T]) Empty() bool {
	var none T

	return h.min == none
}

// Len returns the number of entities currently in the heap. O(1).
func (h *Heap[T]) Len() int { return h.size }

// Min returns the entity with the smallest priority without removing it.
// ok is false when the heap is empty. O(1), and idempotent: repeated calls
// without intervening mutation return the same entity.
func (h *Heap[T]) Min() (min T, ok bool) {
	return h.min, !h.Empty()
}

// Insert places x into the heap at the given priority.
//
// The entity's linkage is fully re-initialized first, so x may carry stale
// state from a previous heap membership; reinsertion is a supported
// operation, not an error. O(1).
func (h *Heap[T]) Insert(x T, priority float64) {
	x.HeapNode().init(x, priority)

	if h.Empty() {
		h.min = x
	} else {
		insertAfter(h.min, x)
		if priority < h.min.HeapNode().priority {
			h.min = x
		}
	}
	h.size++
}

// PopMin removes and returns the entity with the smallest priority.
// ok is false when the heap is empty.
//
// The minimum's children are promoted to the root ring and the roots are
// then consolidated so that no two roots share a degree. Amortized O(log n).
func (h *Heap[T]) PopMin() (min T, ok bool) {
	var none T
	if h.min == none {
		return none, false
	}

	min = h.min
	mn := min.HeapNode()

	if mn.next == min {
		h.min = none
	} else {
		h.min = mn.next
		unlink(min)
	}

	// Promote the children of min to the root ring.
	if mn.child != none {
		c := mn.child
		for {
			c.HeapNode().parent = none
			c = c.HeapNode().next
			if c == mn.child {
				break
			}
		}
		if h.min == none {
			h.min = mn.child
		} else {
			splice(h.min, mn.child)
		}
		mn.child = none
	}

	if h.min != none {
		h.consolidate()
	}
	h.size--

	// Detach the popped entity's sibling links so it does not pin live
	// heap entities; Insert re-initializes everything anyway.
	mn.next, mn.prev = min, min

	return min, true
}

// DecreasePriority lowers the priority of an entity already in the heap.
//
// priority must be strictly below the entity's current priority; violating
// that is a caller bug and panics. If the new priority undercuts the
// parent's, x is cut to the root ring with a cascading cut up the marked
// ancestors. Amortized O(1).
func (h *Heap[T]) DecreasePriority(x T, priority float64) {
	n := x.HeapNode()
	if priority >= n.priority {
		panic(fmt.Sprintf("fibheap: DecreasePriority to %v is not below current %v", priority, n.priority))
	}

	n.priority = priority

	var none T
	if n.parent != none && priority < n.parent.HeapNode().priority {
		h.cut(x)
	}

	// x may have become the new minimum even if it already was a root.
	if x != h.min && priority < h.min.HeapNode().priority {
		h.min = x
	}
}

// Clear empties the heap. With reset=true every entity still reachable from
// the root ring has its linkage scrubbed (iteratively, with an explicit
// stack), leaving each entity in the same state as one never inserted; with
// reset=false the structure is simply dropped and entities keep stale
// linkage, which Insert tolerates.
func (h *Heap[T]) Clear(reset bool) {
	var none T
	if h.min != none && reset {
		stack := make([]T, 0, h.size)
		r := h.min
		for {
			next := r.HeapNode().next
			stack = append(stack, r)
			if next == h.min {
				break
			}
			r = next
		}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := x.HeapNode()
			if c := n.child; c != none {
				for {
					nx := c.HeapNode().next
					stack = append(stack, c)
					if nx == n.child {
						break
					}
					c = nx
				}
			}
			n.next, n.prev = x, x
			n.parent, n.child = none, none
			n.degree = 0
			n.marked = false
		}
	}
	h.min = none
	h.size = 0
}

// consolidate merges equal-degree root trees until every surviving root has
// a distinct degree, then leaves h.min at the smallest surviving root.
// On a merge the root with the larger priority becomes a child of the other;
// the absorbed root is unmarked.
func (h *Heap[T]) consolidate() {
	var none T

	cur := h.min
	h.min = none
	for i := range h.scratch {
		h.scratch[i] = none
	}

	for cur != none {
		next := none
		if n := cur.HeapNode(); n.next != cur {
			next = n.next
			unlink(cur)
		}

		for {
			n := cur.HeapNode()
			n.marked = false // cur is (re)joining the root ring

			root := h.scratch[n.degree]
			if root == none {
				h.rootPush(cur)
				break
			}
			h.rootRemove(root)

			if root.HeapNode().priority < n.priority {
				pushChild(root, cur)
				cur = root
			} else {
				pushChild(cur, root)
				root.HeapNode().marked = false
			}
		}

		cur = next
	}
}

// rootPush splices root into the root ring and records it in the
// degree-indexed table; the slot for its degree must be free.
func (h *Heap[T]) rootPush(root T) {
	var none T
	rn := root.HeapNode()

	if h.min == none {
		rn.next, rn.prev = root, root
		h.min = root
	} else {
		insertAfter(h.min, root)
	}

	h.scratch[rn.degree] = root

	if rn.priority < h.min.HeapNode().priority {
		h.min = root
	}
}

// rootRemove takes root out of the root ring and frees its table slot.
func (h *Heap[T]) rootRemove(root T) {
	var none T
	rn := root.HeapNode()

	if root == h.min {
		if rn.next == root {
			h.min = none
		} else {
			h.min = rn.next
			unlink(root)
		}
	} else {
		unlink(root)
	}

	h.scratch[rn.degree] = none
}

// cut detaches x from its parent and splices it into the root ring,
// cascading up marked ancestors. The cascade stops at the first unmarked
// non-root ancestor, which is marked instead, or at a root. Iterative: the
// cascade never recurses.
func (h *Heap[T]) cut(x T) {
	var none T
	for {
		n := x.HeapNode()
		parent := n.parent
		pn := parent.HeapNode()

		// Remove x from the parent's child ring.
		if pn.child == x {
			if n.next != x {
				pn.child = n.next
				unlink(x)
			} else {
				pn.child = none
			}
		} else {
			unlink(x)
		}
		n.parent = none
		pn.degree--

		// Splice x into the root ring, unmarked.
		insertAfter(h.min, x)
		n.marked = false

		if pn.parent == none {
			break
		}
		if !pn.marked {
			pn.marked = true

			break
		}
		x = parent
	}
}

// insertAfter splices x into the ring right after at.
func insertAfter[T Item[T]](at, x T) {
	an, xn := at.HeapNode(), x.HeapNode()
	xn.next = an.next
	xn.prev = at
	an.next.HeapNode().prev = x
	an.next = x
}

// splice joins two rings: after it, head and tail are adjacent and the two
// rings form one. Any node of a circular ring can be viewed as its head.
func splice[T Item[T]](head, tail T) {
	hn, tn := head.HeapNode(), tail.HeapNode()
	hn.next.HeapNode().prev = tn.prev
	tn.prev.HeapNode().next = hn.next
	hn.next = tail
	tn.prev = head
}

// unlink removes x from its sibling ring; x must not be alone in the ring.
func unlink[T Item[T]](x T) {
	n := x.HeapNode()
	n.next.HeapNode().prev = n.prev
	n.prev.HeapNode().next = n.next
}

// pushChild makes child a child of parent, growing parent's child ring.
func pushChild[T Item[T]](parent, child T) {
	var none T
	pn, cn := parent.HeapNode(), child.HeapNode()

	if pn.child == none {
		cn.next, cn.prev = child, child
		pn.child = child
	} else {
		insertAfter(pn.child, child)
	}
	cn.parent = parent
	pn.degree++
}
