// Package builder generates the adjacency matrices of clustered processor
// interconnection networks.
//
// Three topology families are supported, each a fixed-size cluster wired by
// one internal pattern and replicated numClusters times:
//
//   - Star: 6-node clusters; cluster 0 is a hub linked to the homologous node
//     of every other cluster, plus sparse irregular cross-links.
//   - Ring: 7-node clusters linked node-to-node to the next cluster with
//     wraparound, plus parity-dependent irregular links.
//   - Grid: 9-node clusters placed on a ceil(sqrt(n))-side square grid and
//     linked to their right, bottom and diagonal neighbours.
//
// The package offers the following key components:
//
//   - Generate(family, numClusters, opts...) → *Topology (0/1 symmetric
//     adjacency matrix + classified edge list).
//   - Family descriptors: cluster size, internal Chord set, link-rule table.
//   - Edge categories (Internal, Hub, Neighbor, Irregular, Right, Bottom,
//     DiagonalRight, DiagonalLeft) and per-edge rule tags for renderers.
//   - Functional options (WithLogger) resolved into an immutable builderConfig.
//
// Guarantees:
//
//   - Determinism: Generate is a pure function of (family, numClusters).
//   - Binary symmetric output: links are written once into a working matrix
//     and folded with matrix.SymmetrizeBinary, so repeated links stay 1.
//   - Boundary behaviour is explicit: a rule whose target cluster lies past
//     the last one either substitutes a fixed early-cluster node (Star, Ring)
//     or is skipped (Grid). No rule relies on recovering from an index error.
//   - Structured errors: ErrInvalidArgument, ErrUnknownFamily, ErrSelfLoop,
//     wrapped with the family method name; callers use errors.Is.
//
// The Star and Ring substitution tables and the Ring wrap exemptions for
// clusters 0 and 1 reproduce a hand-tuned reference wiring for small cluster
// counts. They are kept exactly for numeric reproducibility and are not a
// general topological law.
package builder
