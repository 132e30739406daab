// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies for fixtures,
// benchmarks and the spgen command.
//
// A Constructor describes one topology over vertex ids [0, n). BuildGraph
// sizes a core.Graph for the largest constructor and applies them in order,
// so several constructors can be overlaid on the same vertex set.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntUniformWeightFn(1, 3))},
//		builder.Grid(4, 4))
//
// Topologies:
//   - Path(n), Cycle(n), Star(n), Complete(n)
//   - Grid(rows, cols): vertex r*cols+c, 4-neighborhood
//   - Theta(k, length): k internally disjoint routes of equal length
//     between vertex 0 and vertex 1
//   - RandomSparse(n, p): each pair {i, j} joined with probability p
//
// Determinism: for equal options, seed and constructor order the generated
// graph, including every weight, is identical. Weights are drawn in edge
// emission order.
//
// Option constructors panic on meaningless input (nil functions, bad
// ranges); constructors themselves only return sentinel errors.
package builder
