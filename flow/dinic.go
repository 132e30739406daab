// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

// MaxDisjointShortestPaths returns the maximum number of pairwise
// edge-disjoint minimum-cost paths from source to sink, where dist is the
// output of dijkstra.ShortestDistances(g, source).
//
// Steps:
//  1. Normalize options and validate the inputs (O(1)).
//  2. Handle the trivial cases: source == sink → 1, unreachable sink → 0.
//  3. Build the unit-capacity tied network via buildTiedNetwork (O(V + E)).
//  4. Repeat until the sink is unreachable in the level graph:
//     a. Check for cancellation.
//     b. BFS from source to assign levels.
//     c. DFS blocking flow; each successful push is one more path.
//     d. Return early once opts.Limit paths are found.
//
// Complexity:
//
//	Time:   O(E · √E) on the unit-capacity network.
//	Memory: O(V + E) for arcs, levels and iterators.
func MaxDisjointShortestPaths(
	g *core.Graph,
	source, sink int,
	dist dijkstra.Vector,
	opts FlowOptions,
) (int, error) {
	// 1) Normalize options and validate
	if g == nil {
		return 0, ErrGraphNil
	}
	if err := opts.normalize(); err != nil {
		return 0, fmt.Errorf("%w: %g", err, opts.Tolerance)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return 0, fmt.Errorf("%w: N%d", ErrSourceNotFound, source)
	}
	if sink < 0 || sink >= n {
		return 0, fmt.Errorf("%w: N%d", ErrSinkNotFound, sink)
	}
	if len(dist) != n {
		return 0, fmt.Errorf("%w: %d != %d", ErrDistanceLength, len(dist), n)
	}

	// 2) Trivial cases
	if source == sink {
		return 1, nil
	}
	if !dist.Reachable(sink) {
		return 0, nil
	}

	// 3) Tied network
	nw := buildTiedNetwork(g, dist, opts.Tolerance)

	// 4) Phases
	var (
		maxFlow int
		level   = make([]int, n)
		iter    = make([]int, n)
	)
	for {
		// 4a) Cancellation check before BFS
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}
		// 4b) Level graph
		if !nw.levels(source, sink, level) {
			break
		}
		// 4c) Blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for nw.augment(source, sink, level, iter) {
			maxFlow++
			// 4d) Early exit
			if opts.Limit > 0 && maxFlow >= opts.Limit {
				return maxFlow, nil
			}
		}
	}

	return maxFlow, nil
}

// levels fills level with BFS depths over arcs with remaining capacity and
// reports whether sink was reached.
func (nw *network) levels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.cap > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[sink] >= 0
}

// augment pushes one unit along the level graph, advancing iter past dead
// arcs so that every arc is examined at most once per phase.
func (nw *network) augment(u, sink int, level, iter []int) bool {
	if u == sink {
		return true
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		ai := nw.adj[u][iter[u]]
		a := nw.arcs[ai]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		if nw.augment(a.to, sink, level, iter) {
			nw.arcs[ai].cap--
			nw.arcs[ai^1].cap++

			return true
		}
	}

	return false
}
