// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// options.go - functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.

package builder

import "log/slog"

// BuilderOption customizes generation by mutating a builderConfig before
// any link is written.
type BuilderOption func(*builderConfig)

// WithLogger routes boundary decisions (substituted and skipped links) to l
// at Debug level. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
