// SPDX-License-Identifier: MIT
// Package: clusternet/metrics
//
// types.go - result types, engine selection and functional options.

package metrics

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/clusternet/builder"
)

// Metrics is the immutable result of Compute.
type Metrics struct {
	Processors  int     // N
	Diameter    float64 // D
	AvgDiameter float64 // aD
	MaxDegree   int     // S
	Cost        int     // C
	Traffic     float64 // T
}

// Field is one labelled figure, in display order.
type Field struct {
	Label string
	Value float64
}

// String renders "label: value" using the shortest exact decimal form.
func (f Field) String() string {
	return f.Label + ": " + strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// Labels used by Fields.
const (
	LabelProcessors  = "Number of processors"
	LabelDiameter    = "D"
	LabelAvgDiameter = "aD"
	LabelMaxDegree   = "S"
	LabelCost        = "C"
	LabelTraffic     = "T"
)

// Fields returns the figures as ordered label/value pairs.
func (m Metrics) Fields() []Field {
	return []Field{
		{LabelProcessors, float64(m.Processors)},
		{LabelDiameter, m.Diameter},
		{LabelAvgDiameter, m.AvgDiameter},
		{LabelMaxDegree, float64(m.MaxDegree)},
		{LabelCost, float64(m.Cost)},
		{LabelTraffic, m.Traffic},
	}
}

// SweepRow pairs a cluster count with the metrics of that scale.
type SweepRow struct {
	Clusters int
	Metrics
}

// Engine selects the all-pairs shortest path algorithm.
type Engine int

const (
	// FloydWarshall runs the dense O(N³) relaxation.
	FloydWarshall Engine = iota
	// BFS runs one breadth-first search per source.
	BFS
)

var engineNames = map[Engine]string{
	FloydWarshall: "floyd-warshall",
	BFS:           "bfs",
}

// String returns the engine name.
func (e Engine) String() string {
	if s, ok := engineNames[e]; ok {
		return s
	}

	return fmt.Sprintf("engine(%d)", int(e))
}

// ParseEngine resolves "floyd-warshall" (or "fw") and "bfs".
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "floyd-warshall", "floydwarshall", "fw":
		return FloydWarshall, nil
	case "bfs":
		return BFS, nil
	}

	return 0, fmt.Errorf("metrics: %q: %w", name, ErrUnknownEngine)
}

// Option configures Compute and Sweep.
type Option func(*config)

type config struct {
	engine Engine
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		engine: FloydWarshall,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// builderOptions forwards the logger to topology generation in Sweep.
func (c config) builderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithLogger(c.logger)}
}

// WithEngine selects the all-pairs engine. Panics on an unknown value.
func WithEngine(e Engine) Option {
	if _, ok := engineNames[e]; !ok {
		panic(fmt.Sprintf("metrics: WithEngine(%d)", int(e)))
	}
	return func(c *config) {
		c.engine = e
	}
}

// WithLogger sends per-computation Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("metrics: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
