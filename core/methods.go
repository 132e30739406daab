// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Graph mutation (AddEdge) and read-only queries.
// Determinism:
//   - Neighbors() follows insertion order, or neighbor id order with WithSortedAdjacency.
//   - Edges() follows insertion order.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge stores the undirected edge u-v with weight w as two mirrored arcs.
//
// Implementation:
//   - Stage 1: Validate w is not NaN and both ids are in range.
//   - Stage 2: Reject u == v unless WithLoops was given.
//   - Stage 3: Append (u→v, w) and (v→u, w) under the write lock.
//
// Negative weights are accepted; they are counted and reported by NegativeEdges.
//
// Errors:
//   - ErrBadWeight, ErrVertexOutOfRange, ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1) amortized; O(deg) with WithSortedAdjacency.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: edge N%d-N%d", ErrBadWeight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: N%d", ErrLoopNotAllowed, u)
	}

	g.insertArc(u, Arc{To: v, Weight: w})
	g.insertArc(v, Arc{To: u, Weight: w})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	if w < 0 {
		g.negCount++
	}

	return nil
}

// insertArc appends a to adj[from], or inserts it after the last arc with
// a.To <= existing.To when adjacency is sorted. Caller holds the write lock.
func (g *Graph) insertArc(from int, a Arc) {
	list := g.adj[from]
	if !g.sorted {
		g.adj[from] = append(list, a)
		return
	}
	i := sort.Search(len(list), func(i int) bool { return list[i].To > a.To })
	list = append(list, Arc{})
	copy(list[i+1:], list[i:])
	list[i] = a
	g.adj[from] = list
}

// checkVertex validates id against [0, n). Caller holds a lock.
func (g *Graph) checkVertex(id int) error {
	if id < 0 || id >= len(g.adj) {
		return fmt.Errorf("%w: N%d not in [0,%d)", ErrVertexOutOfRange, id, len(g.adj))
	}

	return nil
}

// Neighbors returns the arcs leaving u in adjacency order.
// The returned slice aliases internal storage: read it, do not modify it.
// Its capacity is clipped, so appending to it never touches the graph.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	list := g.adj[u]

	return list[:len(list):len(list)], nil
}

// HasVertex reports whether id is in [0, n).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.adj)
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of all undirected edges in insertion order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NegativeEdges returns the edges with a negative weight, in insertion order.
// A non-empty result means shortest distances computed over g are unreliable.
//
// Complexity: O(1) when there are none, O(E) otherwise.
func (g *Graph) NegativeEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.negCount == 0 {
		return nil
	}
	out := make([]Edge, 0, g.negCount)
	for _, e := range g.edges {
		if e.Weight < 0 {
			out = append(out, e)
		}
	}

	return out
}

// MinWeight returns the smallest weight among the edges between u and v.
// ok is false when u and v are not adjacent or either id is out of range.
//
// Complexity: O(deg(u)).
func (g *Graph) MinWeight(u, v int) (w float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return 0, false
	}
	w = math.Inf(1)
	for _, a := range g.adj[u] {
		if a.To == v && a.Weight < w {
			w, ok = a.Weight, true
		}
	}

	return w, ok
}
