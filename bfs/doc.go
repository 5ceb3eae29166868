// Package bfs provides breadth-first search over a 0/1 adjacency matrix,
// returning unweighted hop distances, parent links, and visit order.
//
// What
//
//   - Distances explores nodes in non-decreasing hop count from a source
//     index and returns a Result (Order, Depth, Parent).
//   - AllPairs runs one search per source and assembles an N×N distance
//     matrix with +Inf for unreachable pairs, the same convention as
//     matrix.FloydWarshall, so either engine can feed the metrics package.
//   - Hooks: OnVisit (may abort with an error); MaxDepth limit; context
//     cancellation checked once per dequeue.
//
// Determinism
//
//	Neighbors are scanned in ascending column order, so the visit sequence
//	and parent choice are fully reproducible.
//
// Complexity (N = nodes, E = links)
//
//   - Distances: O(N²) to read the matrix row by row, O(N + E) search.
//   - AllPairs:  O(N²) neighbor extraction once + O(N·(N + E)) searches.
package bfs
