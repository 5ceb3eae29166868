// File: builder_impl_test.go
// Package builder_test contains functional tests for the cluster topology
// generators, verifying sizes, edge counts, boundary links and invariants.
package builder_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/matrix"
)

// edgeIndex maps a normalized (From,To) pair to its Edge record.
func edgeIndex(t *testing.T, top *builder.Topology) map[[2]int]builder.Edge {
	t.Helper()
	idx := make(map[[2]int]builder.Edge)
	for _, e := range top.Edges() {
		require.Less(t, e.From, e.To, "edges must be normalized")
		idx[[2]int{e.From, e.To}] = e
	}

	return idx
}

// TestGenerate_Counts checks N and the number of distinct links per family.
func TestGenerate_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family   builder.Family
		clusters int
		wantN    int
		wantE    int
	}{
		{builder.Star, 1, 6, 5},
		{builder.Star, 2, 12, 16},
		{builder.Star, 3, 18, 31},
		{builder.Star, 4, 24, 46},
		{builder.Star, 5, 30, 62},
		{builder.Star, 6, 36, 76},
		{builder.Star, 7, 42, 93},
		{builder.Ring, 1, 7, 8},
		{builder.Ring, 2, 14, 25},
		{builder.Ring, 3, 21, 51},
		{builder.Ring, 4, 28, 70},
		{builder.Ring, 5, 35, 88},
		{builder.Grid, 1, 9, 12},
		{builder.Grid, 2, 18, 27},
		{builder.Grid, 3, 27, 45},
		{builder.Grid, 4, 36, 66},
		{builder.Grid, 5, 45, 82},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%s/%d", tc.family, tc.clusters), func(t *testing.T) {
			t.Parallel()
			top, err := builder.Generate(tc.family, tc.clusters)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, top.Size())
			assert.Equal(t, tc.clusters, top.Clusters())
			assert.Equal(t, tc.family, top.Family())
			assert.Len(t, top.Edges(), tc.wantE, "clusters=%d", tc.clusters)

			total, err := matrix.Total(top.Adjacency())
			require.NoError(t, err)
			assert.Equal(t, float64(2*tc.wantE), total, "each link contributes two ones")
		})
	}
}

// TestGenerate_AdjacencyInvariants checks symmetric 0/1 zero-diagonal output
// and agreement between the matrix and the edge list.
func TestGenerate_AdjacencyInvariants(t *testing.T) {
	t.Parallel()

	for _, f := range builder.Families() {
		for n := 1; n <= 12; n++ {
			top, err := builder.Generate(f, n)
			require.NoError(t, err)
			adj := top.Adjacency()
			require.NoError(t, matrix.ValidateAdjacency(adj), "%v n=%d", f, n)

			idx := edgeIndex(t, top)
			for i := 0; i < adj.Rows(); i++ {
				for j := i + 1; j < adj.Cols(); j++ {
					v, err := adj.At(i, j)
					require.NoError(t, err)
					_, listed := idx[[2]int{i, j}]
					assert.Equal(t, v == 1, listed, "%v n=%d (%d,%d)", f, n, i, j)
				}
			}
		}
	}
}

// TestGenerate_Deterministic checks repeated calls agree.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	for _, f := range builder.Families() {
		a := builder.MustGenerate(f, 9)
		b := builder.MustGenerate(f, 9)
		assert.True(t, a.Adjacency().Equal(b.Adjacency()), f.String())
		assert.Equal(t, a.Edges(), b.Edges(), f.String())
	}
}

// TestGenerate_InternalReplicated checks every cluster carries the chord set.
func TestGenerate_InternalReplicated(t *testing.T) {
	t.Parallel()

	for _, f := range builder.Families() {
		top := builder.MustGenerate(f, 4)
		internal := top.EdgesByCategory(builder.Internal)
		chords := f.InternalEdges()
		require.Len(t, internal, 4*len(chords), f.String())

		adj := top.Adjacency()
		for c := 0; c < 4; c++ {
			base := c * f.ClusterSize()
			for _, ch := range chords {
				v, err := adj.At(base+ch.U, base+ch.V)
				require.NoError(t, err)
				assert.Equal(t, 1.0, v, "%v cluster %d chord %v", f, c, ch)
			}
		}
	}
}

// TestGenerate_Errors covers argument validation.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		for _, f := range builder.Families() {
			_, err := builder.Generate(f, n)
			require.ErrorIs(t, err, builder.ErrInvalidArgument, "%v n=%d", f, n)
		}
	}

	_, err := builder.Generate(builder.Family(42), 3)
	require.ErrorIs(t, err, builder.ErrUnknownFamily)

	assert.Panics(t, func() { builder.MustGenerate(builder.Star, 0) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

// TestStar_Links checks hub links and boundary substitutions.
func TestStar_Links(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Star, 3)
	idx := edgeIndex(t, top)

	// hub: offset k of cluster 0 to offset k of clusters 1 and 2.
	for k := 0; k < builder.StarClusterSize; k++ {
		for c := 1; c < 3; c++ {
			e, ok := idx[[2]int{k, c*6 + k}]
			require.True(t, ok, "hub k=%d c=%d", k, c)
			assert.Equal(t, builder.Hub, e.Category)
		}
	}

	// cluster 1 reaches cluster 2 directly.
	e, ok := idx[[2]int{6, 13}]
	require.True(t, ok)
	assert.Equal(t, "next-0-1", e.Rule)
	assert.False(t, e.Clamped)

	// cluster 2 is last: next-0-1 substitutes node 7, next-4-4 node 10.
	e, ok = idx[[2]int{7, 12}]
	require.True(t, ok)
	assert.Equal(t, "next-0-1", e.Rule)
	assert.True(t, e.Clamped)

	e, ok = idx[[2]int{10, 16}]
	require.True(t, ok)
	assert.Equal(t, "next-4-4", e.Rule)
	assert.True(t, e.Clamped)

	// prev-3-2 and the substituted next-3-2 coincide; the first record wins.
	e, ok = idx[[2]int{8, 15}]
	require.True(t, ok)
	assert.Equal(t, "prev-3-2", e.Rule)
	assert.False(t, e.Clamped)

	// skip-2-2 from cluster 2 is dropped rather than substituted.
	for _, e := range top.Edges() {
		assert.NotEqual(t, "skip-2-2", e.Rule)
	}
}

// TestStar_SingleCluster checks that one cluster carries only its chords.
func TestStar_SingleCluster(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Star, 1)
	assert.Len(t, top.EdgesByCategory(builder.Internal), 5)
	assert.Empty(t, top.EdgesByCategory(builder.Hub))
	assert.Empty(t, top.EdgesByCategory(builder.Irregular))
}

// TestRing_Wrap checks the last cluster wraps to cluster 0 only when n ≥ 3.
func TestRing_Wrap(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Ring, 3)
	idx := edgeIndex(t, top)
	for i := 0; i < builder.RingClusterSize; i++ {
		e, ok := idx[[2]int{i, 14 + i}]
		require.True(t, ok, "wrap offset %d", i)
		assert.Equal(t, builder.Neighbor, e.Category)
		assert.True(t, e.Clamped)
	}
	// n = 3 disables skip-1-1 entirely.
	for _, e := range top.Edges() {
		assert.NotEqual(t, "skip-1-1", e.Rule)
	}

	two := builder.MustGenerate(builder.Ring, 2)
	assert.Len(t, two.EdgesByCategory(builder.Neighbor), builder.RingClusterSize)
	for _, e := range two.Edges() {
		assert.False(t, e.Clamped, "%+v", e)
	}
}

// TestRing_SkipLinks checks the parity-dependent shortcuts for n = 4.
func TestRing_SkipLinks(t *testing.T) {
	t.Parallel()

	idx := edgeIndex(t, builder.MustGenerate(builder.Ring, 4))

	e, ok := idx[[2]int{1, 15}] // cluster 0 offset 1 → cluster 2 offset 1
	require.True(t, ok)
	assert.Equal(t, "skip-1-1", e.Rule)

	e, ok = idx[[2]int{12, 26}] // cluster 1 offset 5 → cluster 3 offset 5
	require.True(t, ok)
	assert.Equal(t, "skip-5-5", e.Rule)

	e, ok = idx[[2]int{4, 24}] // cluster 3 offset 3 → node 4
	require.True(t, ok)
	assert.Equal(t, "next-3-4", e.Rule)
	assert.True(t, e.Clamped)
}

// TestGrid_Links checks neighbour directions on a 2×2 grid.
func TestGrid_Links(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Grid, 4)
	idx := edgeIndex(t, top)

	want := []struct {
		from, to int
		cat      builder.Category
	}{
		{2, 15, builder.Right},         // c0 → c1, 2→6
		{8, 9, builder.Right},          // c0 → c1, 8→0
		{5, 12, builder.Right},         // c0 → c1, 5→3
		{8, 27, builder.DiagonalRight}, // c0 → c3, 8→0
		{15, 20, builder.DiagonalLeft}, // c1 → c2, 6→2
		{7, 19, builder.Bottom},        // c0 → c2, 7→1
		{14, 32, builder.Bottom},       // c1 → c3, 5→5
		{20, 33, builder.Right},        // c2 → c3, 2→6
	}
	for _, w := range want {
		e, ok := idx[[2]int{w.from, w.to}]
		require.True(t, ok, "(%d,%d)", w.from, w.to)
		assert.Equal(t, w.cat, e.Category, "(%d,%d)", w.from, w.to)
		assert.False(t, e.Clamped)
	}
}

// TestGrid_SingleCluster checks n = 1 yields the internal block only.
func TestGrid_SingleCluster(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Grid, 1)
	assert.Equal(t, 9, top.Size())
	assert.Len(t, top.Edges(), 12)
	assert.Len(t, top.EdgesByCategory(builder.Internal), 12)
}

// TestGridSide covers ceil(sqrt(n)).
func TestGridSide(t *testing.T) {
	t.Parallel()

	cases := map[int]int{-1: 0, 0: 0, 1: 1, 2: 2, 4: 2, 5: 3, 9: 3, 10: 4, 16: 4, 17: 5, 100: 10}
	for n, want := range cases {
		assert.Equal(t, want, builder.GridSide(n), "n=%d", n)
	}
}

// TestParseFamily covers name resolution.
func TestParseFamily(t *testing.T) {
	t.Parallel()

	for _, f := range builder.Families() {
		got, err := builder.ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := builder.ParseFamily("  RING ")
	require.NoError(t, err)
	assert.Equal(t, builder.Ring, got)

	_, err = builder.ParseFamily("torus")
	require.ErrorIs(t, err, builder.ErrUnknownFamily)

	var f builder.Family
	require.NoError(t, f.UnmarshalText([]byte("grid")))
	assert.Equal(t, builder.Grid, f)
	_, err = builder.Family(7).MarshalText()
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
	assert.Equal(t, "family(7)", builder.Family(7).String())
}

// TestTopology_Accessors checks defensive copies and Locate.
func TestTopology_Accessors(t *testing.T) {
	t.Parallel()

	top := builder.MustGenerate(builder.Ring, 2)
	edges := top.Edges()
	edges[0].From = 99
	assert.NotEqual(t, 99, top.Edges()[0].From)

	adj := top.Adjacency()
	require.NoError(t, adj.Set(0, 1, 0))
	v, err := top.Adjacency().At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	c, off := top.Locate(10)
	assert.Equal(t, 1, c)
	assert.Equal(t, 3, off)

	assert.Equal(t, "diagonal-left", builder.DiagonalLeft.String())
	assert.Equal(t, "category(99)", builder.Category(99).String())
}

// TestWithLogger checks boundary decisions are reported at debug level.
func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := builder.Generate(builder.Star, 3, builder.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "link clamped")
	assert.Contains(t, out, "link skipped")
	assert.Contains(t, out, "rule=next-4-4")
	assert.Contains(t, out, "family=star")
}

// TestGenerate_CostMonotone checks Star and Ring gain links with every cluster.
func TestGenerate_CostMonotone(t *testing.T) {
	t.Parallel()

	for _, f := range []builder.Family{builder.Star, builder.Ring} {
		prev := 0
		for n := 1; n <= 20; n++ {
			got := len(builder.MustGenerate(f, n).Edges())
			assert.Greater(t, got, prev, "%v n=%d", f, n)
			prev = got
		}
	}
}
