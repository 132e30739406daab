// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, visit order and connected
// components.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state. One walker can run several
// searches; vertices stay visited across runs.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w
}

// buildOptions applies opts over the defaults and surfaces recorded errors.
func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Arc weights are ignored; Depth counts hops.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: N%d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)

	return w.res, w.run(start)
}

// Components labels the connected components of g by running one BFS from
// every vertex not yet reached, in id order. Ctx and FilterNeighbor apply;
// MaxDepth and OnVisit are honoured per search as in BFS.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph, opts ...Option) (*ComponentsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	w := newWalker(g, o)
	out := &ComponentsResult{Label: make([]int, n)}
	for v := 0; v < n; v++ {
		if w.res.Depth[v] >= 0 {
			continue
		}
		from := len(w.res.Order)
		if err = w.run(v); err != nil {
			return nil, err
		}
		c := len(out.Sizes)
		for _, u := range w.res.Order[from:] {
			out.Label[u] = c
		}
		out.Sizes = append(out.Sizes, len(w.res.Order)-from)
	}

	return out, nil
}

// run seeds the queue with start and processes it until empty, error, or
// cancellation.
func (w *walker) run(start int) error {
	w.enqueue(start, 0, -1)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueue marks id visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at N%d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	arcs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of N%d: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, a := range arcs {
		if !w.opts.FilterNeighbor(item.id, a.To) {
			continue
		}
		// first time seen?
		if w.res.Depth[a.To] < 0 {
			w.enqueue(a.To, nextDepth, item.id)
		}
	}

	return nil
}
