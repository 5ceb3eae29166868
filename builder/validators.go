// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// validators.go - argument checks shared by every generator.

package builder

import "fmt"

// validateClusters ensures numClusters ≥ MinClusters.
func validateClusters(method string, numClusters int) error {
	if numClusters < MinClusters {
		return fmt.Errorf("%s: numClusters=%d (min %d): %w",
			method, numClusters, MinClusters, ErrInvalidArgument)
	}

	return nil
}

// validateFamily ensures f is a known Family.
func validateFamily(f Family) error {
	if !f.Valid() {
		return fmt.Errorf("%s: %v: %w", MethodGenerate, f, ErrUnknownFamily)
	}

	return nil
}

// validateLink ensures a resolved link is in range and not a self-loop.
func validateLink(method string, size, from, to int, rule string) error {
	if from < 0 || from >= size || to < 0 || to >= size {
		return fmt.Errorf("%s: rule %s: link (%d,%d) outside [0,%d): %w",
			method, rule, from, to, size, ErrConstructFailed)
	}
	if from == to {
		return fmt.Errorf("%s: rule %s: node %d: %w", method, rule, from, ErrSelfLoop)
	}

	return nil
}
