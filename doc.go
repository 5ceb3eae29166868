// Package clusternet models clustered processor interconnection networks.
//
// A network is built from identical clusters of processors, each wired by a
// fixed internal pattern and joined to the others by family-specific links:
//
//	star  6 processors per cluster, cluster 0 acts as hub
//	ring  7 processors per cluster, clusters chained with wraparound
//	grid  9 processors per cluster, clusters on a ceil(√n)-wide square
//
// For every network the module derives the adjacency matrix and the classic
// figures of merit: diameter D, average diameter aD, maximum degree S, link
// cost C and traffic density T.
//
// Packages:
//
//	builder/            topology generation (Generate, Family, Topology, Edge)
//	metrics/            D, aD, S, C, T (Compute) and per-scale sweeps (Sweep)
//	matrix/             dense matrix, validators, Floyd–Warshall
//	bfs/                breadth-first hop distances (alternative APSP engine)
//	report/             bordered matrix, metrics, edge and sweep printers
//	internal/config/    YAML configuration, env overrides, validation, watch
//	internal/logging/   slog + tint process logger
//	cmd/clusternet/     command-line front end
//
// Quick example:
//
//	top, _ := builder.Generate(builder.Ring, 4)
//	m, _ := metrics.Compute(top.Adjacency())
//	fmt.Println(m.Diameter, m.Cost) // 4 70
package clusternet
