// Package bfs provides breadth-first search over an adjacency matrix,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusternet/matrix"
)

// walker encapsulates mutable BFS state for one source.
type walker struct {
	nbrs  [][]int
	opts  Options
	queue []int
	res   *Result
}

// Distances runs breadth-first search on adj starting from src.
// Any non-zero entry adj[i,j] is a link i→j.
//
// Errors: matrix.ErrNilMatrix / matrix.ErrNonSquare for a bad matrix,
// ErrSourceOutOfRange, ErrOptionViolation, context errors, or any error
// returned by the OnVisit hook.
func Distances(adj matrix.Matrix, src int, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	nbrs, err := neighbors(adj)
	if err != nil {
		return nil, err
	}
	if src < 0 || src >= len(nbrs) {
		return nil, fmt.Errorf("bfs: source %d of %d: %w", src, len(nbrs), ErrSourceOutOfRange)
	}

	return run(nbrs, src, o)
}

// AllPairs runs one search per source and returns the N×N hop-distance
// matrix, +Inf for unreachable pairs and 0 on the diagonal.
func AllPairs(adj matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	nbrs, err := neighbors(adj)
	if err != nil {
		return nil, err
	}

	n := len(nbrs)
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	inf := math.Inf(1)
	for src := 0; src < n; src++ {
		res, err := run(nbrs, src, o)
		if err != nil {
			return nil, err
		}
		for dst, d := range res.Depth {
			v := float64(d)
			if d == Unreachable {
				v = inf
			}
			// indices are in range by construction
			_ = dist.Set(src, dst, v)
		}
	}

	return dist, nil
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// neighbors extracts ascending neighbor lists from a square matrix.
func neighbors(adj matrix.Matrix) ([][]int, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := adj.Rows()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := adj.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("bfs: %w", err)
			}
			if v != 0 && i != j {
				out[i] = append(out[i], j)
			}
		}
	}

	return out, nil
}

func run(nbrs [][]int, src int, o Options) (*Result, error) {
	n := len(nbrs)
	w := &walker{
		nbrs:  nbrs,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Source: src,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = Unreachable
	}

	w.enqueue(src, 0, Unreachable)

	return w.res, w.loop()
}

func (w *walker) enqueue(node, depth, parent int) {
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.queue = append(w.queue, node)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		node := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[node]

		w.res.Order = append(w.res.Order, node)
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
		}

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.nbrs[node] {
			if w.res.Depth[nb] == Unreachable {
				w.enqueue(nb, depth+1, node)
			}
		}
	}

	return nil
}
