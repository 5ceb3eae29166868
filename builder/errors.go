// SPDX-License-Identifier: MIT
// Package: clusternet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with "%s: ...: %w" (method first).
//   • Generation never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrInvalidArgument indicates numClusters < 1.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* ask for a positive scale */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrUnknownFamily indicates a Family value or name outside Star/Ring/Grid.
var ErrUnknownFamily = errors.New("builder: unknown topology family")

// ErrSelfLoop indicates a wiring rule resolved both endpoints to the same
// node. The shipped rule tables never do this; the check guards edits to them.
var ErrSelfLoop = errors.New("builder: self-loop produced by wiring rule")

// ErrConstructFailed wraps failures of the underlying matrix operations.
var ErrConstructFailed = errors.New("builder: construction failed")
