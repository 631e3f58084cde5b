// Package graph provides single-source shortest paths (Dijkstra) and
// k-shortest loopless paths (Yen's algorithm) over a compact directed
// weighted graph, both powered by the Fibonacci heap in package fibheap.
//
// Overview:
//
//   - Graph owns a fixed vertex set, addressed by index, plus directed
//     weighted arcs with optional opaque payloads (WithArcData).
//   - ShortestPath runs Dijkstra with true decrease-key relaxation: every
//     usable vertex sits in the heap once and is lowered in place, rather
//     than pushed repeatedly with stale duplicates.
//   - KShortestPaths implements Yen's algorithm: it repeatedly re-runs
//     Dijkstra on a perturbed graph — root-path vertices gated off, a few
//     arcs hidden behind an overlay — and ranks the resulting candidates
//     in a second heap of whole Paths.
//
// Perturbation is transactional: vertex gates and the arc overlay are
// restored on every path out of a spur search, so consecutive queries
// always observe the graph as constructed.
//
// Results:
//
//   - An unreachable target (or fewer than k loopless paths) is a result,
//     not an error: ShortestPath returns (nil, nil) and KShortestPaths a
//     shorter slice.
//   - Errors are reserved for caller bugs: vertex indices out of range,
//     invalid arc weights, non-positive k.
//   - Relative order among equal-weight paths from KShortestPaths is
//     unspecified.
//
// Complexity:
//
//   - ShortestPath:   O(E + V log V)
//   - KShortestPaths: O(k·V·(E + V log V))
//
// Thread safety:
//
//   - None. Queries keep transient state on the graph itself; synchronize
//     externally to share a Graph across goroutines.
package graph
