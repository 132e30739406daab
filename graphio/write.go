// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/spdisjoint/core"
)

// ErrNilGraph is returned by Write for a nil graph.
var ErrNilGraph = errors.New("graphio: graph is nil")

// Write serializes g in the edge-list format, one edge per line in
// insertion order. Weights use the shortest representation that parses
// back to the same float64, so Parse then Build reproduces g exactly.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	edges := g.Edges()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.VertexCount(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "N%d N%d %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphio: %w", cerr)
		}
	}()

	return Write(f, g)
}
