// Package metrics derives the standard interconnection-network figures of
// merit from a symmetric 0/1 adjacency matrix with a zero diagonal.
//
// Given N processors and the all-pairs hop-distance matrix d:
//
//   - D  (Diameter)    = max finite d[i,j]
//   - aD (AvgDiameter) = Σ finite d[i,j] / (N·(N−1)), 0 when N = 1
//   - S  (MaxDegree)   = max row sum of the adjacency matrix
//   - C  (Cost)        = Σ adj / 2, the number of undirected links
//   - T  (Traffic)     = 2·aD / S
//
// Unreachable pairs are dropped before aggregation, but the aD divisor stays
// N·(N−1). A disconnected network therefore reports a lower aD than its
// connected components would.
//
// Two interchangeable all-pairs engines are available: FloydWarshall (the
// default, dense O(N³)) and BFS (one breadth-first search per source,
// O(N·(N+E)) after an O(N²) neighbour scan). They produce identical
// distance matrices on every 0/1 input.
//
// Sweep computes the figures for every scale 1..n of a topology family,
// which is the data behind a metrics-versus-size chart.
package metrics
