// Package matrix offers the dense matrix primitives used to describe and
// analyse cluster interconnection networks.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Validators for the adjacency contract (square, symmetric, zero
//     diagonal, binary entries).
//   - Small structural ops: Transpose, Add, SymmetrizeBinary, RowSums, Total.
//   - FloydWarshall, an in-place all-pairs shortest-path closure over a
//     distance matrix where +Inf means "no path".
//
// Matrices here are small (hundreds of nodes) and dense; O(N²) memory and
// O(N³) APSP are the intended trade-off.
package matrix
