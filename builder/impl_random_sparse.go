// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi graph: each unordered pair {i, j},
// i < j, is joined independently with probability p. Trials run in
// lexicographic pair order, so a fixed seed yields a fixed graph.
//
// Requires n >= 1, 0 <= p <= 1, and an RNG (WithSeed or WithRand) when
// 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	if n < minRandomSparseVertices {
		return invalid(methodRandomSparse, fmt.Errorf("n=%d < min=%d: %w",
			n, minRandomSparseVertices, ErrTooFewVertices))
	}
	if p < probMin || p > probMax || math.IsNaN(p) {
		return invalid(methodRandomSparse, fmt.Errorf("p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability))
	}

	return Constructor{method: methodRandomSparse, n: n, emit: func(e *emitter) error {
		rng := e.cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return ErrNeedRandSource
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case rng.Float64() >= p:
					continue
				}
				if err := e.edge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}}
}
