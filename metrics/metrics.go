// SPDX-License-Identifier: MIT
// Package: clusternet/metrics
//
// metrics.go - Compute and Sweep.
//
// Contract:
//   • adj must be a non-nil square 0/1 matrix, symmetric with a zero
//     diagonal (matrix sentinels otherwise).
//   • Max degree 0 → ErrInvalidState.
//   • Pure: adj is never modified.
//
// Complexity:
//   • FloydWarshall engine: O(N³) time, O(N²) memory.
//   • BFS engine: O(N² + N·E) time, O(N²) memory.

package metrics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/clusternet/bfs"
	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/matrix"
)

const (
	methodCompute = "Compute"
	methodSweep   = "Sweep"
)

// Compute derives N, D, aD, S, C and T from a symmetric 0/1 adjacency matrix.
func Compute(adj matrix.Matrix, opts ...Option) (Metrics, error) {
	cfg := newConfig(opts)

	if err := matrix.ValidateAdjacency(adj); err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", methodCompute, err)
	}

	degrees, err := matrix.RowSums(adj)
	if err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", methodCompute, err)
	}
	var maxDeg, total float64
	for _, d := range degrees {
		total += d
		if d > maxDeg {
			maxDeg = d
		}
	}
	if maxDeg == 0 {
		return Metrics{}, fmt.Errorf("%s: max degree is 0 for N=%d: %w",
			methodCompute, adj.Rows(), ErrInvalidState)
	}

	dist, err := allPairs(adj, cfg.engine)
	if err != nil {
		return Metrics{}, fmt.Errorf("%s: %s: %w", methodCompute, cfg.engine, err)
	}

	diameter, sum, unreachable := aggregate(dist)
	n := adj.Rows()
	var avg float64
	if n > 1 {
		avg = sum / float64(n*(n-1))
	}

	m := Metrics{
		Processors:  n,
		Diameter:    diameter,
		AvgDiameter: avg,
		MaxDegree:   int(maxDeg),
		Cost:        int(total / 2),
		Traffic:     2 * avg / maxDeg,
	}
	cfg.logger.Debug("metrics computed",
		slog.String("engine", cfg.engine.String()),
		slog.Int("N", m.Processors),
		slog.Float64("D", m.Diameter),
		slog.Int("C", m.Cost),
		slog.Int("unreachable_pairs", unreachable))

	return m, nil
}

// allPairs returns the hop-distance matrix with +Inf for unreachable pairs.
func allPairs(adj matrix.Matrix, e Engine) (*matrix.Dense, error) {
	if e == BFS {
		return bfs.AllPairs(adj)
	}
	dist, err := matrix.InitDistances(adj)
	if err != nil {
		return nil, err
	}
	if err = matrix.FloydWarshall(dist); err != nil {
		return nil, err
	}

	return dist, nil
}

// aggregate returns the max and the sum of finite entries, and the count of
// infinite ones.
func aggregate(dist *matrix.Dense) (maxFinite, sum float64, infinite int) {
	n := dist.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := dist.At(i, j)
			if math.IsInf(v, 1) {
				infinite++
				continue
			}
			sum += v
			if v > maxFinite {
				maxFinite = v
			}
		}
	}

	return maxFinite, sum, infinite
}

// Sweep generates family at every scale 1..numClusters and computes its
// metrics. numClusters < 1 yields builder.ErrInvalidArgument.
func Sweep(family builder.Family, numClusters int, opts ...Option) ([]SweepRow, error) {
	if numClusters < builder.MinClusters {
		return nil, fmt.Errorf("%s: numClusters=%d: %w", methodSweep, numClusters, builder.ErrInvalidArgument)
	}
	cfg := newConfig(opts)

	rows := make([]SweepRow, 0, numClusters)
	for c := 1; c <= numClusters; c++ {
		top, err := builder.Generate(family, c, cfg.builderOptions()...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodSweep, err)
		}
		m, err := Compute(top.Adjacency(), opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %s n=%d: %w", methodSweep, family, c, err)
		}
		rows = append(rows, SweepRow{Clusters: c, Metrics: m})
	}

	return rows, nil
}
