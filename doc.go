// Package lvlpath finds the k shortest loopless paths between two vertices
// of a directed weighted graph — and ships the Fibonacci heap that makes
// it fast.
//
// 🚀 What is lvlpath?
//
//	A small, focused library built around one hard core:
//		• fibheap — a generic intrusive Fibonacci heap with amortized O(1)
//		  decrease-key and delete-min (with consolidation & cascading cuts)
//		• graph   — Dijkstra's shortest path with true decrease-key
//		  relaxation, and Yen's k-shortest loopless paths on top of it
//
// ✨ Why choose lvlpath?
//
//   - Exact decrease-key – vertices are lowered in place, never pushed twice
//   - Intrusive entities – vertices and paths ARE heap members, zero wrappers
//   - Transactional perturbation – Yen's spur searches always restore the graph
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under two subpackages:
//
//	fibheap/ — the amortized heap: Insert, Min, PopMin, DecreasePriority,
//	           Clear, plus Check (structural self-test) and WriteDOT (debug)
//	graph/   — Graph, Vertex, Arc, Path; ShortestPath and KShortestPaths
//
// Quick ASCII example:
//
//	    0 ──1── 1
//	    │       │ ╲3
//	    5       1  ╲
//	    │       │   ╲
//	    └────── 2 ─1─ 3
//
//	the shortest 0→3 path is 0→1→2→3 (weight 3); the second-best, 0→1→3
//	(weight 4) — exactly what KShortestPaths(0, 3, 2) returns.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
