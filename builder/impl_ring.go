// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// impl_ring.go - ring-of-clusters generator.
//
// Contract:
//   • numClusters ≥ 1, else ErrInvalidArgument.
//   • N = 7·numClusters; every cluster carries the Ring chord set.
//   • Neighbor links: offset i of cluster c → offset i of cluster c+1 for
//     i = 0..6. The last cluster wraps to node i of cluster 0, except when
//     the last cluster is 0 or 1 (no self-wrap, no doubled 2-ring).
//   • Irregular links per cluster c (base = 7c):
//       even c, n ≠ 3  skip-1-1  base+1 → cluster c+2 offset 1, else node 1 (c ∉ {0,2})
//       odd c          skip-5-5  base+5 → cluster c+2 offset 5, else node 12 (c ∉ {1,3})
//       every c        next-3-4  base+3 → cluster c+1 offset 4, else node 4 (c ∉ {0,1})
//       every c        next-2-0  base+2 → cluster c+1 offset 0, else node 0 (c ∉ {0,1})
//
// Complexity:
//   • Time:   O(N²), Memory: O(N²).
//
// Determinism:
//   • Cluster-major, rule-table order. Pure function of numClusters.

package builder

import "strconv"

// ringRules returns the Ring link-rule table for numClusters clusters.
func ringRules(numClusters int) []linkRule {
	const size = RingClusterSize
	rules := make([]linkRule, 0, size+4)
	for i := 0; i < size; i++ {
		rules = append(rules, linkRule{
			name:      "next-" + strconv.Itoa(i),
			category:  Neighbor,
			src:       local(size, i),
			dst:       plus(1),
			dstOffset: i,
			fallback:  exceptClusters(i, 0, 1),
		})
	}

	return append(rules,
		linkRule{
			name: "skip-1-1", category: Irregular,
			applies: func(c int) bool { return c%2 == 0 && numClusters != 3 },
			src:     local(size, 1), dst: plus(2), dstOffset: 1,
			fallback: exceptClusters(1, 0, 2),
		},
		linkRule{
			name: "skip-5-5", category: Irregular,
			applies: func(c int) bool { return c%2 == 1 },
			src:     local(size, 5), dst: plus(2), dstOffset: 5,
			fallback: exceptClusters(size+5, 1, 3),
		},
		linkRule{
			name: "next-3-4", category: Irregular,
			src: local(size, 3), dst: plus(1), dstOffset: 4,
			fallback: exceptClusters(4, 0, 1),
		},
		linkRule{
			name: "next-2-0", category: Irregular,
			src: local(size, 2), dst: plus(1), dstOffset: 0,
			fallback: exceptClusters(0, 0, 1),
		},
	)
}

// buildRing wires a ring-of-clusters topology.
func buildRing(numClusters int, cfg builderConfig) (*Topology, error) {
	if err := validateClusters(MethodRing, numClusters); err != nil {
		return nil, err
	}
	w, err := newWiring(Ring, numClusters, cfg)
	if err != nil {
		return nil, err
	}
	if err = w.wireInternal(); err != nil {
		return nil, err
	}
	if err = w.applyRules(ringRules(numClusters)); err != nil {
		return nil, err
	}

	return w.finish()
}
