// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// types.go - edge classification and the immutable Topology result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clusternet/matrix"
)

// Category classifies an undirected link for renderers (colour/style).
type Category int

const (
	// Internal links belong to the fixed intra-cluster pattern.
	Internal Category = iota
	// Hub links join star cluster 0 to the homologous node of another cluster.
	Hub
	// Neighbor links join ring node i to node i of the next cluster (with wrap).
	Neighbor
	// Irregular links are the dashed star/ring shortcuts.
	Irregular
	// Right links join a grid cluster to its right neighbour.
	Right
	// Bottom links join a grid cluster to the cluster below it.
	Bottom
	// DiagonalRight links join a grid cluster to its bottom-right neighbour.
	DiagonalRight
	// DiagonalLeft links join a grid cluster to its bottom-left neighbour.
	DiagonalLeft
)

var categoryNames = [...]string{
	Internal:      "internal",
	Hub:           "hub",
	Neighbor:      "neighbor",
	Irregular:     "irregular",
	Right:         "right",
	Bottom:        "bottom",
	DiagonalRight: "diagonal-right",
	DiagonalLeft:  "diagonal-left",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// Edge is one undirected link between 0-based nodes From < To.
//
// Rule names the wiring rule that produced the link first (stable tags such
// as "hub-3", "skip-1-1", "bottom-7-1"). Clamped is true when the rule's
// natural target lay past the last cluster and a substitute node was used.
type Edge struct {
	From, To int
	Category Category
	Rule     string
	Clamped  bool
}

// Topology is the immutable result of Generate.
type Topology struct {
	family   Family
	clusters int
	adj      *matrix.Dense
	edges    []Edge
}

// Family returns the generating family.
func (t *Topology) Family() Family { return t.family }

// Clusters returns the number of clusters.
func (t *Topology) Clusters() int { return t.clusters }

// Size returns the number of processors N = clusterSize × clusters.
func (t *Topology) Size() int { return t.adj.Rows() }

// Adjacency returns a copy of the N×N symmetric 0/1 adjacency matrix.
// Complexity: O(N²).
func (t *Topology) Adjacency() *matrix.Dense {
	return t.adj.Clone().(*matrix.Dense)
}

// Edges returns a copy of the classified edge list in emission order.
func (t *Topology) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// EdgesByCategory returns the edges of one category in emission order.
func (t *Topology) EdgesByCategory(c Category) []Edge {
	var out []Edge
	for _, e := range t.edges {
		if e.Category == c {
			out = append(out, e)
		}
	}

	return out
}

// Locate maps a 0-based node to its cluster index and local offset.
func (t *Topology) Locate(node int) (cluster, offset int) {
	size := t.family.ClusterSize()

	return node / size, node % size
}
