package metrics

import "errors"

// ErrInvalidState indicates a matrix whose maximum degree is 0, for which
// traffic density is undefined.
var ErrInvalidState = errors.New("metrics: invalid state")

// ErrUnknownEngine indicates an Engine value or name outside FloydWarshall/BFS.
var ErrUnknownEngine = errors.New("metrics: unknown engine")
