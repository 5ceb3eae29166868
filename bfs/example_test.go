package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/clusternet/bfs"
	"github.com/katalvlaran/clusternet/matrix"
)

// ExampleDistances finds hop counts from node 0 on a 5-node path.
func ExampleDistances() {
	adj, _ := matrix.NewSquare(5)
	for i := 0; i+1 < 5; i++ {
		_ = adj.Set(i, i+1, 1)
		_ = adj.Set(i+1, i, 1)
	}

	res, _ := bfs.Distances(adj, 0)
	path, _ := res.PathTo(4)
	fmt.Println("depth:", res.Depth)
	fmt.Println("path:", path)

	// Output:
	// depth: [0 1 2 3 4]
	// path: [0 1 2 3 4]
}
