// Package fibheap_test contains unit tests for the Fibonacci heap:
// ordering under mixed operation sequences, decrease-key and cascading-cut
// behavior, entity reinsertion, Clear, and the debug utilities.
package fibheap_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/fibheap"
)

// task is a minimal heap entity: embedding fibheap.Node is all it takes.
type task struct {
	fibheap.Node[*task]

	name string
}

func TestHeap_EmptyBehavior(t *testing.T) {
	h := fibheap.New[*task]()

	require.True(t, h.Empty())
	require.Equal(t, 0, h.Len())

	_, ok := h.Min()
	require.False(t, ok)
	_, ok = h.PopMin()
	require.False(t, ok)

	require.NoError(t, h.Check())
}

func TestHeap_MinIsIdempotent(t *testing.T) {
	h := fibheap.New[*task]()
	a := &task{name: "a"}
	b := &task{name: "b"}
	h.Insert(a, 2)
	h.Insert(b, 1)

	// Repeated find-min without mutation must return identical results.
	for i := 0; i < 5; i++ {
		min, ok := h.Min()
		require.True(t, ok)
		require.Same(t, b, min)
		require.Equal(t, 2, h.Len())
	}
}

func TestHeap_PopMinOrdering(t *testing.T) {
	h := fibheap.New[*task]()
	priorities := []float64{7, 3, 9, 1, 5, 8, 2, 6, 4, 0}
	for _, p := range priorities {
		h.Insert(&task{}, p)
	}
	require.NoError(t, h.Check())

	for want := 0.0; want < 10; want++ {
		min, ok := h.PopMin()
		require.True(t, ok)
		assert.Equal(t, want, min.Priority())
		require.NoError(t, h.Check())
	}
	require.True(t, h.Empty())
}

// TestHeap_RandomOperations drives a seeded mix of insert, decrease-key and
// pop against a shadow model, checking every pop returns the global
// minimum and the structure stays consistent throughout.
func TestHeap_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := fibheap.New[*task]()

	inHeap := make(map[*task]bool)
	var entities []*task

	popAndVerify := func() {
		// Shadow expectation: the smallest live priority.
		want := 0.0
		first := true
		for e := range inHeap {
			if first || e.Priority() < want {
				want = e.Priority()
				first = false
			}
		}
		min, ok := h.PopMin()
		require.True(t, ok)
		assert.Equal(t, want, min.Priority())
		delete(inHeap, min)
	}

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(10); {
		case op < 5: // insert
			e := &task{}
			h.Insert(e, float64(rng.Intn(10000)))
			inHeap[e] = true
			entities = append(entities, e)
		case op < 8: // decrease-key on a random live entity
			if len(inHeap) == 0 {
				continue
			}
			var e *task
			for _, cand := range entities {
				if inHeap[cand] {
					e = cand

					break
				}
			}
			if e.Priority() <= 0 {
				continue
			}
			before, _ := h.Min()
			h.DecreasePriority(e, e.Priority()-float64(1+rng.Intn(100)))
			after, ok := h.Min()
			require.True(t, ok)
			// Decrease-key never increases the global minimum.
			assert.LessOrEqual(t, after.Priority(), before.Priority())
		default: // pop
			if len(inHeap) == 0 {
				continue
			}
			popAndVerify()
		}
		require.Equal(t, len(inHeap), h.Len())
	}
	require.NoError(t, h.Check())

	// Drain what is left; must come out sorted.
	var got []float64
	for !h.Empty() {
		min, ok := h.PopMin()
		require.True(t, ok)
		got = append(got, min.Priority())
	}
	require.True(t, sort.Float64sAreSorted(got), "drained priorities not sorted: %v", got)
}

func TestHeap_DecreasePriorityBecomesMin(t *testing.T) {
	h := fibheap.New[*task]()
	a := &task{name: "a"}
	b := &task{name: "b"}
	h.Insert(a, 10)
	h.Insert(b, 20)

	// b is not the minimum but must become it.
	h.DecreasePriority(b, 5)
	min, ok := h.Min()
	require.True(t, ok)
	require.Same(t, b, min)

	// Decreasing the current minimum keeps it the minimum.
	h.DecreasePriority(b, 1)
	min, _ = h.Min()
	require.Same(t, b, min)
	require.NoError(t, h.Check())
}

func TestHeap_DecreaseToNotSmallerPanics(t *testing.T) {
	h := fibheap.New[*task]()
	a := &task{}
	h.Insert(a, 3)

	// Equal and larger priorities are caller bugs, not recoverable states.
	require.Panics(t, func() { h.DecreasePriority(a, 3) })
	require.Panics(t, func() { h.DecreasePriority(a, 4) })
}

func TestHeap_Reinsertion(t *testing.T) {
	h := fibheap.New[*task]()
	a := &task{name: "a"}

	// Force a into a parent/child structure so it accumulates linkage.
	others := make([]*task, 8)
	for i := range others {
		others[i] = &task{}
		h.Insert(others[i], float64(10+i))
	}
	h.Insert(a, 30)
	min, _ := h.PopMin() // triggers consolidation; a likely gains a parent
	require.NotSame(t, a, min)

	// Drain the heap completely, remembering a came out.
	for !h.Empty() {
		h.PopMin()
	}

	// a still carries stale linkage from the previous membership; Insert
	// must fully reset it.
	h.Insert(a, 1)
	require.NoError(t, h.Check())
	min, ok := h.Min()
	require.True(t, ok)
	require.Same(t, a, min)
	require.Equal(t, 1.0, min.Priority())

	// An entity may also move between heap instances.
	h2 := fibheap.New[*task]()
	got, _ := h.PopMin()
	h2.Insert(got, 7)
	require.NoError(t, h2.Check())
	require.Equal(t, 1, h2.Len())
}

func TestHeap_ClearReset(t *testing.T) {
	h := fibheap.New[*task]()
	entities := make([]*task, 20)
	for i := range entities {
		entities[i] = &task{}
		h.Insert(entities[i], float64(i))
	}
	h.PopMin() // build some parent/child structure first

	h.Clear(true)
	require.True(t, h.Empty())
	require.Equal(t, 0, h.Len())
	require.NoError(t, h.Check())

	// Scrubbed entities behave exactly like fresh ones.
	for i, e := range entities[1:] {
		h.Insert(e, float64(100-i))
	}
	require.NoError(t, h.Check())
	require.Equal(t, len(entities)-1, h.Len())

	// Clear without reset drops the structure; reinsertion still works
	// because Insert tolerates stale linkage.
	h.Clear(false)
	require.True(t, h.Empty())
	h.Insert(entities[0], 4)
	h.Insert(entities[1], 2)
	require.NoError(t, h.Check())
	min, _ := h.PopMin()
	require.Equal(t, 2.0, min.Priority())
}

func TestHeap_WriteDOT(t *testing.T) {
	h := fibheap.New[*task]()
	names := []string{"a", "b", "c", "d", "e"}
	for i, n := range names {
		h.Insert(&task{name: n}, float64(i))
	}
	h.PopMin() // give the topology at least one parent/child edge

	var b strings.Builder
	err := h.WriteDOT(&b, func(x *task) string { return x.name })
	require.NoError(t, err)

	out := b.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, "fillcolor=red")
	assert.Contains(t, out, "color=blue")
	for _, n := range names[1:] {
		assert.Contains(t, out, n)
	}
}

func TestHeap_WriteDOTEmpty(t *testing.T) {
	h := fibheap.New[*task]()
	var b strings.Builder
	require.NoError(t, h.WriteDOT(&b, func(x *task) string { return x.name }))
	assert.Equal(t, "digraph G {\nranksep=.5; size = \"10,5\";\nnode [shape=box,width=0.8,height=0.3];\n}\n", b.String())
}
