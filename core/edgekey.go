// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// DefaultTolerance is the absolute tolerance used when comparing path costs
// and shortest-path distances.
const DefaultTolerance = 1e-7

// EdgeKey is the normalized identity of an undirected edge: U <= V always,
// so the keys of (u,v) and (v,u) are equal.
type EdgeKey struct {
	U, V int
}

// NewEdgeKey returns the normalized key for the undirected edge u-v.
func NewEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// String renders k as "U-V", matching the classic "min-max" key format.
func (k EdgeKey) String() string {
	return fmt.Sprintf("%d-%d", k.U, k.V)
}

// ApproxEqual reports |a-b| <= tol. Two +Inf values are equal; Inf and a
// finite value never are.
func ApproxEqual(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= tol
}
