// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a rows x cols orthogonal grid. Cell (r, c) is vertex
// r*cols+c; for each cell in row-major order the right edge is emitted, then
// the bottom edge.
//
// With unit weights the number of shortest paths between opposite corners
// grows binomially while at most two of them can be edge-disjoint, which
// makes grids the stock fixture for greedy extraction.
func Grid(rows, cols int) Constructor {
	if rows < minGridDim || cols < minGridDim {
		return invalid(methodGrid, fmt.Errorf("rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices))
	}

	return Constructor{method: methodGrid, n: rows * cols, emit: func(e *emitter) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := e.edge(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := e.edge(u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}}
}
