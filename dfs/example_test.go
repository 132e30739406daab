package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dfs"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

// ExampleDisjointPaths extracts both shortest routes of a diamond.
func ExampleDisjointPaths() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	dist, _ := dijkstra.ShortestDistances(g, 0)
	paths, _ := dfs.DisjointPaths(g, 0, 3, 3, dist)
	for i, p := range paths {
		fmt.Printf("Path %d: %s\n", i+1, p)
	}
	// Output:
	// Path 1: N0 -> N1 -> N3
	// Path 2: N0 -> N2 -> N3
}

// ExampleWithBanned excludes a link before searching.
func ExampleWithBanned() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	down := dfs.NewBannedSet()
	down.Ban(0, 2)

	dist, _ := dijkstra.ShortestDistances(g, 0)
	paths, _ := dfs.DisjointPaths(g, 0, 3, 3, dist, dfs.WithBanned(down))
	fmt.Println(paths)
	// Output: [N0 -> N1 -> N3]
}
