// Package dijkstra implements Dijkstra's single-source shortest-distance
// computation over core.Graph using a lazy min-heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spdisjoint/core"
)

// ShortestDistances computes the shortest distance from source to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, n) (ErrVertexNotFound).
//
// The result is freshly allocated on every call and owned by the caller.
// Calling it twice on an unmodified graph yields identical vectors.
//
// Complexity: Time O(E log V), Space O(V + E).
func ShortestDistances(g *core.Graph, source int) (Vector, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: N%d", ErrVertexNotFound, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(Vector, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within a run
	source  int
	dist    Vector // current best distance from source
	settled []bool // distance finalized
	pq      nodePQ // lazy priority queue
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process pops the closest unsettled vertex until the heap is empty.
// Stale entries (vertex already settled) are skipped.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves dist[v] for each arc u→v to an unsettled v where
// dist[u]+w < dist[v] and pushes the improved entry. Settled distances are
// final, so dist[source] stays 0 even next to a negative edge.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of N%d: %w", u, err)
	}

	du := r.dist[u]
	var nd float64
	for _, a := range arcs {
		if r.settled[a.To] {
			continue
		}
		nd = du + a.Weight
		if nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
