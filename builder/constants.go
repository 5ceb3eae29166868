// Package builder defines shared constants used by the topology generators,
// keeping cluster sizes and method tags in one place.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodStar is the canonical name for the star-of-clusters generator.
	MethodStar = "Star"
	// MethodRing is the canonical name for the ring-of-clusters generator.
	MethodRing = "Ring"
	// MethodGrid is the canonical name for the grid-of-clusters generator.
	MethodGrid = "Grid"
	// MethodGenerate tags errors raised before a family is resolved.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Cluster Sizes
//-----------------------------------------------------------------------------

// StarClusterSize is the number of processors in one star cluster.
const StarClusterSize = 6

// RingClusterSize is the number of processors in one ring cluster.
const RingClusterSize = 7

// GridClusterSize is the number of processors in one grid cluster (3×3).
const GridClusterSize = 9

// MinClusters is the smallest accepted scale for every family.
const MinClusters = 1

//-----------------------------------------------------------------------------
// Rule tags
//-----------------------------------------------------------------------------

// RuleInternal tags edges of the fixed intra-cluster pattern.
const RuleInternal = "internal"
