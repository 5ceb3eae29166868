// SPDX-License-Identifier: MIT
// Package: clusternet/matrix
//
// impl_linear_algebra.go - structural ops used to assemble adjacency matrices.
//
// Contract:
//   - Inputs are validated (nil → ErrNilMatrix, shape → ErrDimensionMismatch).
//   - Results are fresh *Dense values; inputs are never mutated.
//   - *Dense operands take a flat-buffer fast path; other Matrix values go
//     through At/Set.

package matrix

import "fmt"

const (
	opTranspose  = "Transpose"
	opAdd        = "Add"
	opSymmetrize = "SymmetrizeBinary"
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as *Dense, copying through the interface when needed.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Add returns a + b element-wise.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + db.data[k]
	}

	return res, nil
}

// SymmetrizeBinary returns min(1, m + mᵀ) for a square 0/1 matrix holding
// links in either triangle. A link written in both directions stays 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonBinary (input entries must be 0/1).
// Complexity: O(n²).
func SymmetrizeBinary(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	if err := ValidateBinary(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	for k, v := range sum.data {
		if v > 1 {
			sum.data[k] = 1
		}
	}

	return sum, nil
}
