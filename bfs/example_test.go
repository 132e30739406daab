package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/bfs"
	"github.com/katalvlaran/spdisjoint/core"
)

// ExampleComponents counts components and the pairs that can be routed.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 2.5)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(3, 4, 7)

	comps, _ := bfs.Components(g)
	fmt.Println(comps.Count(), comps.Sizes, comps.ConnectedPairs())
	// Output: 2 [3 2] 4
}

// ExampleBFS prints hop depths from vertex 0.
func ExampleBFS() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	res, _ := bfs.BFS(g, 0)
	fmt.Println(res.Order, res.Depth)
	// Output: [0 1 2 3] [0 1 1 2]
}
