// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// impl_grid.go - grid-of-clusters generator.
//
// Contract:
//   • numClusters ≥ 1, else ErrInvalidArgument.
//   • N = 9·numClusters; every cluster carries the Grid chord set.
//   • Clusters sit row-major on a g×g grid, g = ceil(sqrt(numClusters));
//     col = c mod g. Links (source offset → target offset):
//       col ≠ g-1   Right          → c+1      2→6, 8→0, 5→3
//       col ≠ g-1   DiagonalRight  → c+g+1    8→0
//       col ≠ 0     DiagonalLeft   → c+g-1    6→2
//       always      Bottom         → c+g      7→1, 6→2, 8→0, 3→3, 5→5
//   • Targets at or past the last cluster are skipped; there is no wrap.
//   • numClusters = 1 yields the single internal 3×3 block.
//
// Complexity:
//   • Time:   O(N²), Memory: O(N²).

package builder

import (
	"fmt"
	"math"
)

// GridSide returns ceil(sqrt(numClusters)), the side of the cluster grid.
// Returns 0 for numClusters < 1.
func GridSide(numClusters int) int {
	if numClusters < 1 {
		return 0
	}
	g := int(math.Sqrt(float64(numClusters)))
	for g*g > numClusters {
		g--
	}
	for g*g < numClusters {
		g++
	}

	return g
}

// gridLink is one (source offset → target offset) pair of a grid direction.
type gridLink struct{ from, to int }

// gridDirection groups the links shared by one neighbour direction.
type gridDirection struct {
	category Category
	prefix   string
	applies  func(col int) bool
	delta    int
	links    []gridLink
}

// gridRules returns the Grid link-rule table for a g-wide grid.
func gridRules(g int) []linkRule {
	const size = GridClusterSize
	notLast := func(col int) bool { return col != g-1 }
	notFirst := func(col int) bool { return col != 0 }

	dirs := []gridDirection{
		{Right, "right", notLast, 1, []gridLink{{2, 6}, {8, 0}, {5, 3}}},
		{DiagonalRight, "diagonal-right", notLast, g + 1, []gridLink{{8, 0}}},
		{DiagonalLeft, "diagonal-left", notFirst, g - 1, []gridLink{{6, 2}}},
		{Bottom, "bottom", nil, g, []gridLink{{7, 1}, {6, 2}, {8, 0}, {3, 3}, {5, 5}}},
	}

	var rules []linkRule
	for _, d := range dirs {
		var applies func(int) bool
		if d.applies != nil {
			colOK := d.applies
			applies = func(c int) bool { return colOK(c % g) }
		}
		for _, l := range d.links {
			rules = append(rules, linkRule{
				name:      fmt.Sprintf("%s-%d-%d", d.prefix, l.from, l.to),
				category:  d.category,
				applies:   applies,
				src:       local(size, l.from),
				dst:       plus(d.delta),
				dstOffset: l.to,
			})
		}
	}

	return rules
}

// buildGrid wires a grid-of-clusters topology.
func buildGrid(numClusters int, cfg builderConfig) (*Topology, error) {
	if err := validateClusters(MethodGrid, numClusters); err != nil {
		return nil, err
	}
	w, err := newWiring(Grid, numClusters, cfg)
	if err != nil {
		return nil, err
	}
	if err = w.wireInternal(); err != nil {
		return nil, err
	}
	if err = w.applyRules(gridRules(GridSide(numClusters))); err != nil {
		return nil, err
	}

	return w.finish()
}
