// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Arc, Edge types, sentinel errors, options and the NewGraph constructor.
// Concurrency:
//   - mu guards adj, edges and negCount; flags are immutable after construction.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for Graph Store operations.
var (
	// ErrEmptyGraph indicates a graph with no vertices was requested.
	ErrEmptyGraph = errors.New("core: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrBadWeight indicates a weight that cannot be compared (NaN).
	ErrBadWeight = errors.New("core: weight is NaN")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrTooManyVertices indicates n > MaxVertices.
	ErrTooManyVertices = errors.New("core: too many vertices")
)

// MaxVertices bounds the vertex count accepted by NewGraph.
const MaxVertices = 1 << 22

// Arc is one directed adjacency entry: the neighbor reached and the weight paid.
type Arc struct {
	To     int
	Weight float64
}

// Edge is one undirected edge as it was added to the graph.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Key returns the normalized identity of e.
func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.From, e.To)
}

// String renders e as "N<from>-N<to> (w)".
func (e Edge) String() string {
	return fmt.Sprintf("N%d-N%d (%g)", e.From, e.To, e.Weight)
}

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithSortedAdjacency keeps each adjacency list ordered by neighbor id instead
// of insertion order. Parallel edges to the same neighbor keep insertion order.
func WithSortedAdjacency() GraphOption {
	return func(g *Graph) { g.sorted = true }
}

// WithLoops permits self-loops (u == v). A loop is stored once per endpoint
// entry, like any other edge, and can never lie on a simple path.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithEdgeCapacity pre-sizes the edge catalog for m undirected edges.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.edges = make([]Edge, 0, m)
		}
	}
}

// Graph is the write-once, read-many undirected weighted graph.
type Graph struct {
	mu sync.RWMutex

	sorted     bool // adjacency sorted by neighbor id
	allowLoops bool // accept u == v

	adj      [][]Arc // adj[u] = arcs leaving u
	edges    []Edge  // undirected edges in insertion order
	negCount int     // number of edges with Weight < 0
}

// NewGraph creates a graph with n vertices and no edges.
// Returns ErrEmptyGraph when n <= 0 and ErrTooManyVertices when
// n > MaxVertices.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyGraph, n)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooManyVertices, n, MaxVertices)
	}
	g := &Graph{adj: make([][]Arc, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
