// SPDX-License-Identifier: MIT

// Package graphio reads the plain-text edge-list format and builds a
// core.Graph from it.
//
// Format
//
//	5            # n, number of nodes
//	6            # m, number of edge lines that follow
//	N0 N1 1.5
//	(N1 N2) 2    # parentheses and comments are ignored
//	N2 N3 0.25 extra tokens ignored
//	...
//
//   - Blank lines and lines holding only a '#' comment are skipped everywhere.
//   - The first remaining line carries n, the second m; the first
//     whitespace-separated token of each must be an integer, and n must not
//     exceed core.MaxVertices.
//   - The next m remaining lines are edge lines. Tokens are scanned left to
//     right until both endpoints and the weight are known: the first
//     N<digits> token is U, each later one replaces V, and the first other
//     token that parses as a float is the weight. "N1 N2 N3 4" is edge 1-3;
//     "N1 N2 4 N3" is edge 1-2. Lines after the m-th are ignored.
//
// Faults
//
// Every fault is a *LineError carrying the 1-based line number and the raw
// text, wrapping one of ErrBadHeader, ErrBadEdgeLine, ErrBadNodeID or
// ErrShortInput. Use errors.Is on the sentinel and errors.As for the line.
//
// Policies
//
//   - Strict (default): the first fault aborts Parse.
//   - Lenient: faulty edge lines are skipped and collected into
//     Document.Faults (a go.uber.org/multierr aggregate); header faults
//     remain fatal because nothing can be built without n and m.
//
// Build turns a Document into a core.Graph, mapping store errors (ids out
// of range, NaN weights, loops) back to the line they came from.
package graphio
