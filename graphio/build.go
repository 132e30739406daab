// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
)

// ErrNilDocument is returned by Build for a nil Document.
var ErrNilDocument = errors.New("graphio: document is nil")

// Build creates a core.Graph with doc.Nodes vertices and adds every edge in
// input order. A store rejection (core.ErrVertexOutOfRange, core.ErrBadWeight,
// core.ErrLoopNotAllowed) is returned as a *LineError naming the edge line.
// n <= 0 surfaces as core.ErrEmptyGraph.
func Build(doc *Document, opts ...core.GraphOption) (*core.Graph, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	opts = append([]core.GraphOption{core.WithEdgeCapacity(len(doc.Edges))}, opts...)
	g, err := core.NewGraph(doc.Nodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	for _, e := range doc.Edges {
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, &LineError{
				Line: e.Line,
				Text: fmt.Sprintf("N%d N%d %g", e.U, e.V, e.Weight),
				Err:  err,
			}
		}
	}

	return g, nil
}
