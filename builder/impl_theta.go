// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodTheta    = "Theta"
	minThetaRoutes = 1
	minThetaLength = 1
)

// Theta returns k internally disjoint routes of length edges each between
// vertex 0 and vertex 1. Route i uses the interior vertices
// 2+i*(length-1) .. 2+(i+1)*(length-1)-1 in order.
//
// With length == 1 the routes are k parallel edges 0-1, which share one
// edge identity. Requires k >= 1 and length >= 1.
func Theta(k, length int) Constructor {
	if k < minThetaRoutes || length < minThetaLength {
		return invalid(methodTheta, fmt.Errorf("k=%d, length=%d (min %d, %d): %w",
			k, length, minThetaRoutes, minThetaLength, ErrTooFewVertices))
	}
	inner := length - 1

	return Constructor{method: methodTheta, n: 2 + k*inner, emit: func(e *emitter) error {
		for i := 0; i < k; i++ {
			prev := 0
			for j := 0; j < inner; j++ {
				v := 2 + i*inner + j
				if err := e.edge(prev, v); err != nil {
					return err
				}
				prev = v
			}
			if err := e.edge(prev, 1); err != nil {
				return err
			}
		}
		return nil
	}}
}
