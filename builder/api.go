// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// api.go - public entry point dispatching to the family generators.

package builder

// Generate builds the topology of the given family with numClusters clusters.
//
// Contract:
//   • numClusters ≥ 1, else ErrInvalidArgument.
//   • Unknown family → ErrUnknownFamily.
//   • The adjacency matrix is N×N, symmetric, 0/1, zero diagonal.
//
// Complexity: O(N²) time and memory, N = ClusterSize·numClusters.
//
// Determinism: identical inputs yield identical matrices and edge lists.
func Generate(f Family, numClusters int, opts ...BuilderOption) (*Topology, error) {
	if err := validateFamily(f); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	switch f {
	case Star:
		return buildStar(numClusters, cfg)
	case Ring:
		return buildRing(numClusters, cfg)
	default:
		return buildGrid(numClusters, cfg)
	}
}

// MustGenerate is like Generate but panics on error. Intended for tests and
// package-level fixtures.
func MustGenerate(f Family, numClusters int, opts ...BuilderOption) *Topology {
	t, err := Generate(f, numClusters, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
