// Package dijkstra is the Distance Oracle: single-source shortest distances
// over a core.Graph, and an all-pairs driver that runs it once per vertex.
//
// Overview:
//
//   - ShortestDistances(g, s) returns a dense Vector where v[t] is the minimum
//     total weight of any path s→t, or +Inf when t is unreachable. v[s] == 0.
//   - AllPairs(ctx, g, opts...) fills an n×n matrix.Dense whose row s is
//     ShortestDistances(g, s). Sources are processed by a bounded pool of
//     goroutines (errgroup); each worker owns its vector and writes only its
//     own row, so no locking is needed beyond the Graph's read lock.
//
// Algorithm:
//
//   - Binary min-heap (container/heap) ordered by tentative distance.
//   - Lazy decrease-key: an improved distance pushes a fresh entry; entries
//     for already-settled vertices are discarded when popped, and settled
//     vertices are never relaxed again.
//   - Relaxation is strict: dist[u]+w < dist[v].
//
// Weights:
//
//   - Weight sign is NOT validated here. With negative edges the settled-flag
//     discipline still terminates, but the distances may be wrong. Callers
//     check core.Graph.NegativeEdges() and surface a warning.
//
// Complexity:
//
//   - ShortestDistances: Time O(E log V), Space O(V + E).
//   - AllPairs:          Time O(V · E log V), Space O(V²) for the table.
//
// Errors:
//
//   - ErrNilGraph        graph pointer is nil.
//   - ErrVertexNotFound  source id outside [0, n).
//   - ErrBadWorkers      WithWorkers(n) with n < 0.
//   - ctx.Err()          AllPairs cancelled.
package dijkstra
