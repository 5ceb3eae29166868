// SPDX-License-Identifier: MIT
// Package: clusternet/matrix
//
// validators.go - single source of truth for shape and adjacency checks.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Composite validators follow a fixed sequence
//     (NotNil → Square → ZeroDiagonal → Binary → Symmetric), so the first
//     violated rule decides the returned sentinel.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateZeroDiagonal checks m[i,i] == 0 for every i. Assumes m is square.
func ValidateZeroDiagonal(m Matrix) error {
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if v != 0 {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateBinary checks every entry is exactly 0 or 1.
func ValidateBinary(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateBinary", err)
			}
			if v != 0 && v != 1 {
				return validatorErrorf("ValidateBinary", fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNonBinary))
			}
		}
	}

	return nil
}

// ValidateSymmetric checks m[i,j] == m[j,i] exactly. Assumes m is square.
func ValidateSymmetric(m Matrix) error {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			b, err := m.At(j, i)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if a != b {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d)=%g vs (%d,%d)=%g: %w", i, j, a, j, i, b, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateAdjacency is the full undirected 0/1 adjacency contract:
// NotNil → Square → ZeroDiagonal → Binary → Symmetric.
// Complexity: O(n²).
func ValidateAdjacency(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateZeroDiagonal(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateBinary(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}

	return nil
}
