// Package dfs implements the greedy edge-disjoint shortest-path extraction on
// top of a precomputed distance vector.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	node int
	arcs []core.Arc // adjacency of node, in store order
	next int        // index of the next arc to try
}

// searcher holds the state shared by the k attempts of one extraction.
type searcher struct {
	graph  *core.Graph
	source int
	target int
	dist   dijkstra.Vector
	tol    float64
	banned *BannedSet

	onPath []bool  // vertex is on the current path
	path   []int   // current path buffer
	stack  []frame // explicit DFS stack, parallel to path
}

// DisjointPaths extracts up to k edge-disjoint shortest paths from source to
// target. dist must be the output of dijkstra.ShortestDistances(g, source).
//
// Returns an empty slice, not an error, when target is unreachable
// (dist[target] is +Inf) or k == 0. When source == target the single path
// [source] is returned.
//
// Every returned path costs dist[target] within the tolerance, is simple,
// and shares no undirected edge with another returned path. Fewer than k
// paths are returned as soon as one attempt fails; see the package doc for
// why that can happen even when k disjoint shortest paths exist.
func DisjointPaths(g *core.Graph, source, target, k int, dist dijkstra.Vector, opts ...Option) ([]Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadK, k)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source N%d", ErrVertexNotFound, source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target N%d", ErrVertexNotFound, target)
	}
	if len(dist) != n {
		return nil, fmt.Errorf("%w: %d != %d", ErrDistanceLength, len(dist), n)
	}

	// 2. Trivial outcomes
	paths := make([]Path, 0, min(k, n))
	if k == 0 || !dist.Reachable(target) {
		return paths, nil
	}
	if source == target {
		return append(paths, Path{source}), nil
	}

	// 3. Up to k attempts, banning each accepted path before the next
	s := &searcher{
		graph:  g,
		source: source,
		target: target,
		dist:   dist,
		tol:    cfg.Tolerance,
		banned: cfg.Banned.clone(),
		onPath: make([]bool, n),
		path:   make([]int, 0, n),
		stack:  make([]frame, 0, n),
	}
	for attempt := 0; attempt < k; attempt++ {
		found, err := s.search()
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		p := make(Path, len(s.path))
		copy(p, s.path)
		paths = append(paths, p)
		s.banned.BanPath(p)
	}

	return paths, nil
}

// search runs one DFS attempt from source. On success s.path holds the path.
func (s *searcher) search() (bool, error) {
	// reset state left by the previous attempt
	for _, v := range s.path {
		s.onPath[v] = false
	}
	s.path = s.path[:0]
	s.stack = s.stack[:0]

	if err := s.push(s.source); err != nil {
		return false, err
	}
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.node == s.target {
			return true, nil
		}

		advanced := false
		for top.next < len(top.arcs) {
			a := top.arcs[top.next]
			top.next++
			if !s.admissible(top.node, a) {
				continue
			}
			// push may reallocate the stack; top is not used past this point
			if err := s.push(a.To); err != nil {
				return false, err
			}
			advanced = true
			break
		}
		if !advanced {
			s.pop()
		}
	}

	return false, nil
}

// admissible applies the three filters: not banned, not on path, tied.
func (s *searcher) admissible(u int, a core.Arc) bool {
	if s.onPath[a.To] {
		return false
	}
	if s.banned.Contains(u, a.To) {
		return false
	}

	return core.ApproxEqual(s.dist[u]+a.Weight, s.dist[a.To], s.tol)
}

// push appends v to the path and opens a frame over its adjacency.
func (s *searcher) push(v int) error {
	arcs, err := s.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(N%d): %w", v, err)
	}
	s.onPath[v] = true
	s.path = append(s.path, v)
	s.stack = append(s.stack, frame{node: v, arcs: arcs})

	return nil
}

// pop backtracks one level.
func (s *searcher) pop() {
	last := len(s.stack) - 1
	s.onPath[s.stack[last].node] = false
	s.path = s.path[:last]
	s.stack = s.stack[:last]
}
