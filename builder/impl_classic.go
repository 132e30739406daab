// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns the path 0-1-...-(n-1). Requires n >= 1.
func Path(n int) Constructor {
	if n < minPathNodes {
		return invalid(methodPath, fmt.Errorf("n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodPath, n: n, emit: func(e *emitter) error {
		for i := 0; i+1 < n; i++ {
			if err := e.edge(i, i+1); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Cycle returns the cycle 0-1-...-(n-1)-0. Requires n >= 3.
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return invalid(methodCycle, fmt.Errorf("n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodCycle, n: n, emit: func(e *emitter) error {
		for i := 0; i < n; i++ {
			if err := e.edge(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Star returns vertex 0 joined to each of 1..n-1. Requires n >= 2.
func Star(n int) Constructor {
	if n < minStarNodes {
		return invalid(methodStar, fmt.Errorf("n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodStar, n: n, emit: func(e *emitter) error {
		for i := 1; i < n; i++ {
			if err := e.edge(0, i); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Complete returns K_n, emitting {i, j} for i < j in lexicographic order.
func Complete(n int) Constructor {
	if n < minCompleteNodes {
		return invalid(methodComplete, fmt.Errorf("n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodComplete, n: n, emit: func(e *emitter) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := e.edge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}}
}
