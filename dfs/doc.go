// Package dfs is the Disjoint Path Extractor: a depth-first search restricted
// to tied edges that extracts up to K pairwise edge-disjoint minimum-cost
// paths between two vertices of a core.Graph.
//
// What:
//
//   - DisjointPaths(g, s, t, k, dist, opts...): up to k paths s→t, each of cost
//     dist[t] (within tolerance), simple, and sharing no undirected edge with
//     any other returned path.
//   - Verify(g, s, t, paths, dist, tol): checks those guarantees on any path set.
//   - BannedSet: normalized undirected edge identities excluded from the search.
//
// How:
//
//   - dist must be the Distance Oracle output for source s.
//   - An arc u→v of weight w is admissible when its EdgeKey is not banned,
//     v is not already on the current path, and |dist[u]+w-dist[v]| <= tol
//     (a "tied" edge: it lies on some shortest path from s).
//   - Each attempt is an explicit-stack DFS (frames of {vertex, next arc}),
//     trying admissible arcs in adjacency order and returning on the first
//     reach of t. Exhausted frames backtrack by popping the path buffer and
//     clearing the on-path flag.
//   - After a successful attempt every edge of the path is banned; a failed
//     attempt ends the extraction, so fewer than k paths may be returned.
//
// Limits:
//
//   - The search is greedy and order dependent. An early path can take an edge
//     a later disjoint path needed, so fewer than the maximum number of
//     edge-disjoint shortest paths may be returned. flow.MaxDisjointShortestPaths
//     computes that maximum for auditing.
//
// Complexity:
//
//   - Time:   O(k · E) per pair. Each attempt advances every arc index at most once.
//   - Memory: O(V) for the on-path flags, path buffer and frame stack, plus O(E)
//     for the banned set.
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrVertexNotFound      s or t outside [0, n)
//   - ErrBadK                k < 0
//   - ErrDistanceLength      len(dist) != n
//   - ErrBadTolerance        WithTolerance(tol) with tol < 0 or NaN
//   - ErrPathNotSimple, ErrPathEndpoints, ErrMissingEdge, ErrPathCost,
//     ErrSharedEdge          reported by Verify
package dfs
