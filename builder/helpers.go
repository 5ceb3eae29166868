// Package builder provides the shared wiring engine used by the family
// generators: a triangular working matrix, a deduplicated edge list and the
// rule evaluator that resolves boundary substitutions.
package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/clusternet/matrix"
)

// linkRule describes one family of inter-cluster links evaluated once per
// source cluster c.
//
// The natural link joins src(c) to offset dstOffset of cluster dst(c). When
// dst(c) lies outside [0,n) the rule consults fallback; a nil fallback, or
// one returning ok=false, skips the link.
type linkRule struct {
	name      string
	category  Category
	applies   func(c int) bool
	src       func(c int) int
	dst       func(c int) int
	dstOffset int
	fallback  func(c int) (node int, ok bool)
}

// wiring accumulates links for one Generate call.
type wiring struct {
	method   string
	family   Family
	clusters int
	size     int
	work     *matrix.Dense
	edges    []Edge
	seen     map[[2]int]struct{}
	log      *slog.Logger
}

// newWiring allocates an N×N zero working matrix for the given family.
// Complexity: O(N²) time and space.
func newWiring(f Family, numClusters int, cfg builderConfig) (*wiring, error) {
	size := f.ClusterSize() * numClusters
	work, err := matrix.NewSquare(size)
	if err != nil {
		return nil, fmt.Errorf("%s: NewSquare(%d): %w: %w", f.method(), size, ErrConstructFailed, err)
	}

	return &wiring{
		method:   f.method(),
		family:   f,
		clusters: numClusters,
		size:     size,
		work:     work,
		seen:     make(map[[2]int]struct{}),
		log:      cfg.logger.With(slog.String("family", f.String()), slog.Int("clusters", numClusters)),
	}, nil
}

// link writes from→to into the working matrix in emission orientation and
// records the normalized edge once. Repeated links keep the first record.
func (w *wiring) link(from, to int, cat Category, rule string, clamped bool) error {
	if err := validateLink(w.method, w.size, from, to, rule); err != nil {
		return err
	}
	if err := w.work.Set(from, to, 1); err != nil {
		return fmt.Errorf("%s: Set(%d,%d): %w", w.method, from, to, err)
	}

	key := [2]int{from, to}
	if from > to {
		key = [2]int{to, from}
	}
	if _, dup := w.seen[key]; dup {
		return nil
	}
	w.seen[key] = struct{}{}
	w.edges = append(w.edges, Edge{From: key[0], To: key[1], Category: cat, Rule: rule, Clamped: clamped})

	return nil
}

// wireInternal replicates the family's chord set into every cluster.
// Complexity: O(numClusters · |chords|).
func (w *wiring) wireInternal() error {
	size := w.family.ClusterSize()
	chords := internalChords[w.family]
	for c := 0; c < w.clusters; c++ {
		base := c * size
		for _, ch := range chords {
			if err := w.link(base+ch.U, base+ch.V, Internal, RuleInternal, false); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyRules evaluates every rule for every cluster in cluster-major order.
func (w *wiring) applyRules(rules []linkRule) error {
	size := w.family.ClusterSize()
	for c := 0; c < w.clusters; c++ {
		for _, r := range rules {
			if r.applies != nil && !r.applies(c) {
				continue
			}
			from := r.src(c)
			dc := r.dst(c)
			if dc >= 0 && dc < w.clusters {
				if err := w.link(from, dc*size+r.dstOffset, r.category, r.name, false); err != nil {
					return err
				}
				continue
			}
			if r.fallback == nil {
				w.log.Debug("link skipped", slog.String("rule", r.name), slog.Int("cluster", c), slog.Int("target", dc))
				continue
			}
			node, ok := r.fallback(c)
			if !ok {
				w.log.Debug("link skipped", slog.String("rule", r.name), slog.Int("cluster", c), slog.Int("target", dc))
				continue
			}
			w.log.Debug("link clamped", slog.String("rule", r.name), slog.Int("cluster", c), slog.Int("from", from), slog.Int("to", node))
			if err := w.link(from, node, r.category, r.name, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// finish folds the working matrix into a symmetric 0/1 adjacency matrix.
func (w *wiring) finish() (*Topology, error) {
	adj, err := matrix.SymmetrizeBinary(w.work)
	if err != nil {
		return nil, fmt.Errorf("%s: symmetrize: %w", w.method, err)
	}

	return &Topology{family: w.family, clusters: w.clusters, adj: adj, edges: w.edges}, nil
}

// clusterNode returns a constant-node fallback.
func clusterNode(node int) func(int) (int, bool) {
	return func(int) (int, bool) { return node, true }
}

// exceptClusters returns a constant-node fallback disabled for the listed
// source clusters.
func exceptClusters(node int, skip ...int) func(int) (int, bool) {
	return func(c int) (int, bool) {
		for _, s := range skip {
			if c == s {
				return 0, false
			}
		}

		return node, true
	}
}

// local returns a src function pointing at offset off of cluster c.
func local(size, off int) func(int) int {
	return func(c int) int { return c*size + off }
}

// plus returns a dst function c → c+k.
func plus(k int) func(int) int {
	return func(c int) int { return c + k }
}
