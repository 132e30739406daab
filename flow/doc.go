// SPDX-License-Identifier: MIT

// Package flow computes the maximum number of edge-disjoint shortest paths
// between two vertices of a core.Graph. It is the exact counterpart of the
// greedy extractor in package dfs and is used to audit it: the greedy search
// can return fewer paths than exist, and this package tells by how many.
//
// # Method
//
// Given the distance vector dist of the source, an arc u→v of weight w is
// "tied" when |dist[u]+w-dist[v]| <= Tolerance. Every tied arc lies on some
// shortest path from the source, and every shortest path uses tied arcs
// only. The tied arcs form the shortest-path DAG (zero-weight edges may be
// tied both ways).
//
// Each undirected edge identity (core.EdgeKey, so parallel edges collapse
// into one) contributes a unit-capacity arc in every tied direction. The
// maximum s→t flow on that network equals the maximum number of pairwise
// edge-disjoint shortest paths; flow in both directions of one identity
// cancels without changing the value.
//
// The flow is computed with Dinic's algorithm: a BFS level graph followed by
// DFS blocking flows, repeated until the sink drops out of the level graph.
//
// # API
//
//	opts := flow.DefaultOptions()
//	opts.Limit = k // optional: stop once k paths are proven
//	max, err := flow.MaxDisjointShortestPaths(g, s, t, dist, opts)
//
// FlowOptions:
//
//	type FlowOptions struct {
//	    Ctx       context.Context // cancellation; Background when nil
//	    Tolerance float64         // tied-arc slack; core.DefaultTolerance
//	    Limit     int             // stop at this many paths; 0 = no limit
//	}
//
// Conventions: source == sink yields 1 (the trivial path), an unreachable
// sink yields 0.
//
// # Complexity
//
//   - Network build: O(V + E).
//   - Dinic on unit capacities: O(E · √E), and O(E · min(√E, V^(2/3))) in
//     general. With Limit = k the work is at most k augmenting phases.
//   - Memory: O(V + E).
//
// # Errors
//
//	ErrGraphNil        - nil graph.
//	ErrSourceNotFound  - source outside [0, n).
//	ErrSinkNotFound    - sink outside [0, n).
//	ErrDistanceLength  - len(dist) != n.
//	ErrBadTolerance    - negative or NaN Tolerance.
//	context.Canceled / context.DeadlineExceeded - Ctx done between phases.
package flow
