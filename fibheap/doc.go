// Package fibheap provides a generic, intrusive Fibonacci heap — a
// mergeable min-priority queue whose decrease-key runs in amortized O(1).
//
// Overview:
//
//   - Entities embed Node[T] by value and are inserted directly; the heap
//     allocates nothing per element and never copies entities.
//   - Insert, Min, DecreasePriority: amortized O(1).
//   - PopMin: amortized O(log n) — promotes the minimum's children and
//     consolidates equal-degree roots through a degree-indexed table.
//   - Entities removed from a heap (or never inserted) can be (re)inserted
//     into any heap instance; Insert fully resets the linkage.
//
// When to use:
//
//   - Algorithms dominated by decrease-key, such as Dijkstra with exact
//     decrease-key relaxation (see package graph) or candidate ranking in
//     Yen's k-shortest-paths.
//   - Anywhere a stable entity handle must remain addressable while queued.
//
// Error handling:
//
//   - DecreasePriority to a value not strictly below the current priority
//     is a caller bug and panics; it is not a recoverable condition.
//   - An empty heap is not an error: Min and PopMin report ok=false.
//   - Check() validates structural invariants and wraps ErrCorrupt; it is a
//     debug utility, exercised by the test suite rather than production code.
//
// Thread safety:
//
//   - None. The heap mutates entity linkage in place; synchronize
//     externally if entities or heaps are shared across goroutines.
//
// See also:
//
//   - graph.Graph: shortest-path and k-shortest-paths queries built on this
//     heap, with Vertex and Path as the two entity types.
package fibheap
