// SPDX-License-Identifier: MIT

// Package core provides the Graph Store: an in-memory, undirected, weighted
// adjacency representation over dense integer vertex ids 0..n-1.
//
// The Graph is built once (AddEdge) and read many times (Neighbors, Edges).
// Every undirected edge u-v with weight w is stored as two directed arcs
// (u→v, w) and (v→u, w), so the store is always symmetric.
//
// Adjacency order:
//
//   - By default Neighbors(u) returns arcs in insertion order. This order is
//     significant: the disjoint-path search in package dfs accepts the first
//     admissible arc it meets, so insertion order decides which of several
//     equal-cost paths is reported.
//   - WithSortedAdjacency() keeps every adjacency list sorted by neighbor id
//     (stable for parallel edges), which makes the result independent of the
//     order edges appear in the input.
//
// Weights:
//
//   - Weights are float64. Negative weights are accepted and can be listed
//     with NegativeEdges(); shortest-path guarantees do not hold for them.
//   - NaN weights are rejected (ErrBadWeight).
//
// Shared utilities:
//
//   - EdgeKey / NewEdgeKey: normalized, order-independent identity of an
//     undirected edge (smaller endpoint first).
//   - DefaultTolerance and ApproxEqual: absolute tolerance used for
//     floating-point cost comparisons.
//
// Concurrency:
//
//   - All methods are safe for concurrent use (sync.RWMutex). Slices returned by
//     Neighbors alias internal storage and must be treated as read-only.
//
// Errors:
//
//	ErrEmptyGraph        - vertex count n <= 0.
//	ErrTooManyVertices   - vertex count n > MaxVertices.
//	ErrVertexOutOfRange  - vertex id outside [0, n).
//	ErrBadWeight         - NaN weight.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
package core
