// Package spdisjoint answers, for every pair of nodes in an undirected
// weighted graph, two questions: what is the cheapest way between them, and
// how many cheapest routes exist that share no edge.
//
// 🚀 What is spdisjoint?
//
//	A concurrent all-pairs analysis toolkit that brings together:
//		• Core store: write-once, read-many graph with int vertex ids
//		• Shortest distances: Dijkstra from every source, Floyd–Warshall cross-check
//		• Disjoint paths: greedy tied-edge DFS with a banned-edge set
//		• Audit: unit-capacity Dinic on the tied network for the exact maximum
//		• Input/output: plain-text edge lists, text and table reports
//
// Packages:
//
//	core/      - Graph, Arc, Edge, EdgeKey and the shared tolerance
//	dijkstra/  - single-source distances and the parallel all-pairs table
//	matrix/    - dense distance table, Floyd–Warshall, comparison helpers
//	dfs/       - edge-disjoint shortest-path extraction and Verify
//	flow/      - exact maximum of edge-disjoint shortest paths (Dinic)
//	bfs/       - breadth-first traversal and connected components
//	builder/   - deterministic topology generators for fixtures and spgen
//	graphio/   - edge-list parser (strict or lenient), builder and writer
//	analysis/  - the per-pair pipeline with warnings
//	report/    - text and go-pretty table rendering
//	config/    - YAML configuration with validation
//	logging/   - zap logger construction
//
// Commands:
//
//	cmd/sppairs - analyse an input file and print the report
//	cmd/spgen   - write a generated graph in the input format
//
// Quick ASCII example:
//
//	    N0───N1
//	    │     │
//	    N2───N3
//
// With unit weights N0 → N3 costs 2 and has two edge-disjoint cheapest
// routes: N0 → N1 → N3 and N0 → N2 → N3.
//
//	go install github.com/katalvlaran/spdisjoint/cmd/sppairs@latest
package spdisjoint
