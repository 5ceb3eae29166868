// SPDX-License-Identifier: MIT
// Package: clusternet/matrix
//
// impl_statistics.go - row/total reductions (degree vectors, link counts).

package matrix

const (
	opRowSums = "RowSums"
	opTotal   = "Total"
)

// RowSums returns r where r[i] = Σ_j m[i,j]. For a 0/1 adjacency matrix this
// is the degree vector.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	out := make([]float64, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out[i] += d.data[base+j]
		}
	}

	return out, nil
}

// Total returns Σ_ij m[i,j].
// Complexity: O(r*c).
func Total(m Matrix) (float64, error) {
	sums, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	var s float64
	for _, v := range sums {
		s += v
	}

	return s, nil
}
