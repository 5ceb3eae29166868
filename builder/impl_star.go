// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// impl_star.go - star-of-clusters generator.
//
// Contract:
//   • numClusters ≥ 1, else ErrInvalidArgument.
//   • N = 6·numClusters; every cluster carries the Star chord set.
//   • Cluster 0 is the hub: offset k of cluster 0 links to offset k of every
//     other cluster (six Hub links per cluster c ≥ 1).
//   • Irregular links per cluster c (base = 6c):
//       c ≥ 1          next-0-1  base   → cluster c+1 offset 1, else node 7 (c ≥ 2)
//       c ≥ 2          next-4-4  base+4 → cluster c+1 offset 4, else node 10
//       even c ≥ 2     skip-2-2  base+2 → cluster c+2 offset 2, else node 14 (c ≠ 2)
//                      prev-3-2  base+3 → cluster c-1 offset 2
//                      next-3-2  base+3 → cluster c+1 offset 2, else node 8
//       odd c ≥ 3      skip-3-3  base+3 → cluster c+2 offset 3, else node 9
//
// Complexity:
//   • Time:   O(N²) dominated by matrix allocation and symmetrization.
//   • Memory: O(N²).
//
// Determinism:
//   • Cluster-major, rule-table order. Pure function of numClusters.

package builder

import "strconv"

// starRules returns the Star link-rule table.
func starRules() []linkRule {
	const size = StarClusterSize
	atLeast := func(k int) func(int) bool {
		return func(c int) bool { return c >= k }
	}
	evenFrom2 := func(c int) bool { return c >= 2 && c%2 == 0 }
	oddFrom3 := func(c int) bool { return c >= 3 && c%2 == 1 }

	rules := make([]linkRule, 0, size+6)
	for k := 0; k < size; k++ {
		k := k
		rules = append(rules, linkRule{
			name:      "hub-" + strconv.Itoa(k),
			category:  Hub,
			applies:   atLeast(1),
			src:       func(int) int { return k },
			dst:       plus(0),
			dstOffset: k,
		})
	}

	return append(rules,
		linkRule{
			name: "next-0-1", category: Irregular, applies: atLeast(1),
			src: local(size, 0), dst: plus(1), dstOffset: 1,
			fallback: func(c int) (int, bool) { return size + 1, c >= 2 },
		},
		linkRule{
			name: "next-4-4", category: Irregular, applies: atLeast(2),
			src: local(size, 4), dst: plus(1), dstOffset: 4,
			fallback: clusterNode(size + 4),
		},
		linkRule{
			name: "skip-2-2", category: Irregular, applies: evenFrom2,
			src: local(size, 2), dst: plus(2), dstOffset: 2,
			fallback: exceptClusters(2*size+2, 2),
		},
		linkRule{
			name: "prev-3-2", category: Irregular, applies: evenFrom2,
			src: local(size, 3), dst: plus(-1), dstOffset: 2,
		},
		linkRule{
			name: "next-3-2", category: Irregular, applies: evenFrom2,
			src: local(size, 3), dst: plus(1), dstOffset: 2,
			fallback: clusterNode(size + 2),
		},
		linkRule{
			name: "skip-3-3", category: Irregular, applies: oddFrom3,
			src: local(size, 3), dst: plus(2), dstOffset: 3,
			fallback: clusterNode(size + 3),
		},
	)
}

// buildStar wires a star-of-clusters topology.
func buildStar(numClusters int, cfg builderConfig) (*Topology, error) {
	if err := validateClusters(MethodStar, numClusters); err != nil {
		return nil, err
	}
	w, err := newWiring(Star, numClusters, cfg)
	if err != nil {
		return nil, err
	}
	if err = w.wireInternal(); err != nil {
		return nil, err
	}
	if err = w.applyRules(starRules()); err != nil {
		return nil, err
	}

	return w.finish()
}
