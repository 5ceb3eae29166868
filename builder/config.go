// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// config.go - internal configuration resolved from BuilderOption values.
//
// Design:
//   • builderConfig is the single source of truth for generator knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • The default logger discards everything; generation stays silent
//     unless a caller opts in with WithLogger.

package builder

import (
	"io"
	"log/slog"
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// logger receives Debug records for every clamped or skipped link.
	logger *slog.Logger
}

// discardLogger is the deterministic default sink.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{logger: discardLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
