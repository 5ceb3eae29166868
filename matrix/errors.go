// SPDX-License-Identifier: MIT
// Package: clusternet/matrix
//
// errors.go - sentinel error set for the matrix package.
//
// All functions return these sentinels (optionally wrapped with %w context)
// and callers branch with errors.Is. Nothing in this package panics on
// user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a data buffer whose length does not match the shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that m[i,j] != m[j,i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop in an adjacency matrix.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNonBinary signals an adjacency entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrNaN signals a NaN value passed to Set or Fill.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
