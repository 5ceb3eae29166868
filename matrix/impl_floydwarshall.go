// SPDX-License-Identifier: MIT
// Package: clusternet/matrix
//
// impl_floydwarshall.go - dense APSP (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - In-place, O(n³) time, O(1) extra space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFloydWarshall = "FloydWarshall"
	opInitDistances = "InitDistances"
)

// InitDistances converts an adjacency matrix into a fresh distance matrix:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> unchanged (edge cost).
//
// The adjacency matrix itself is not modified.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func InitDistances(adj Matrix) (*Dense, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opInitDistances, err)
	}
	src, err := toDense(adj)
	if err != nil {
		return nil, matrixErrorf(opInitDistances, err)
	}

	n := src.r
	dist := &Dense{r: n, c: n, data: make([]float64, n*n)}
	inf := math.Inf(1)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			switch v := src.data[base+j]; {
			case i == j:
				dist.data[base+j] = 0
			case v == 0:
				dist.data[base+j] = inf
			default:
				dist.data[base+j] = v
			}
		}
	}

	return dist, nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j); only strict improvements are written.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, fmt.Errorf("Set(%d,%d): %w", i, j, err))
					}
				}
			}
		}
	}

	return nil
}
