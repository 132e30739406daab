package dfs

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

// Verify checks that every path in paths runs from source to target, is
// simple, only uses stored edges, costs dist[target] within tol, and that no
// two paths share an undirected edge. It returns the first violation found,
// wrapped around one of ErrPathEndpoints, ErrPathNotSimple, ErrMissingEdge,
// ErrPathCost or ErrSharedEdge.
//
// Complexity: O(total path length · deg).
func Verify(g *core.Graph, source, target int, paths []Path, dist dijkstra.Vector, tol float64) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(dist) != g.VertexCount() {
		return fmt.Errorf("%w: %d != %d", ErrDistanceLength, len(dist), g.VertexCount())
	}

	used := make(map[core.EdgeKey]int)
	for i, p := range paths {
		if len(p) == 0 || p[0] != source || p[len(p)-1] != target {
			return fmt.Errorf("%w: path %d %v", ErrPathEndpoints, i+1, p)
		}
		seen := make(map[int]struct{}, len(p))
		for _, v := range p {
			if _, dup := seen[v]; dup {
				return fmt.Errorf("%w: path %d repeats N%d", ErrPathNotSimple, i+1, v)
			}
			seen[v] = struct{}{}
		}
		cost, err := p.Cost(g)
		if err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
		if !core.ApproxEqual(cost, dist[target], tol) {
			return fmt.Errorf("%w: path %d costs %g, shortest is %g", ErrPathCost, i+1, cost, dist[target])
		}
		for _, k := range p.Edges() {
			if j, ok := used[k]; ok {
				return fmt.Errorf("%w: edge %s in paths %d and %d", ErrSharedEdge, k, j, i+1)
			}
			used[k] = i + 1
		}
	}

	return nil
}
