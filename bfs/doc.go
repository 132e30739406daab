// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected-component
// labelling built on the same walker.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop count
//     from start and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: Depth[v] hops from start, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the root and unreached vertices
//   - Components(g, opts...) runs BFS from every unreached vertex in id order
//     and returns a ComponentsResult with a label per vertex and the size of
//     every component. Two vertices share a component exactly when their
//     shortest distance is finite, so the result predicts the disconnected
//     pairs of an all-pairs run without computing it.
//
// Determinism
//
//	Neighbors are enqueued in core.Graph adjacency order (insertion order, or
//	id order with core.WithSortedAdjacency), so the visit sequence is fully
//	reproducible. Component numbering follows the smallest vertex id.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	comps, err := bfs.Components(g)
//	fmt.Println(comps.Count(), comps.ConnectedPairs())
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip arcs for which fn(curr, neighbor) == false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if start is outside [0, n).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
