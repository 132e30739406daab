// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order, used as an
//     independent check of the Dijkstra all-pairs table.
//   - Symmetry and equality checks over distance tables.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spdisjoint/core"
)

// FromGraph builds the initial distance matrix of g: 0 on the diagonal, the
// smallest parallel-edge weight for adjacent pairs, +Inf elsewhere.
//
// Complexity: O(n^2 + E).
func FromGraph(g *core.Graph) (*Dense, error) {
	n := g.VertexCount()
	m, err := NewDistanceTable(n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if e.Weight < m.data[e.From*n+e.To] {
			m.data[e.From*n+e.To] = e.Weight
			m.data[e.To*n+e.From] = e.Weight
		}
	}

	return m, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Loop order is fixed (k → i → j); relaxation is strict, so ties never
// rewrite a cell. Time O(n^3), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// CheckSymmetric returns ErrAsymmetry for the first (i, j), i < j, where
// m[i][j] and m[j][i] differ by more than eps (two +Inf cells are equal).
func CheckSymmetric(m *Dense, eps float64) error {
	if m.r != m.c {
		return fmt.Errorf("CheckSymmetric: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := m.data[i*n+j], m.data[j*n+i]
			if !core.ApproxEqual(a, b, eps) {
				return fmt.Errorf("CheckSymmetric: (%d,%d)=%g (%d,%d)=%g: %w", i, j, a, j, i, b, ErrAsymmetry)
			}
		}
	}

	return nil
}

// Compare returns ErrMismatch for the first cell where a and b differ by
// more than eps, or ErrDimensionMismatch when shapes differ.
func Compare(a, b *Dense, eps float64) error {
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("Compare: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	for idx := range a.data {
		if !core.ApproxEqual(a.data[idx], b.data[idx], eps) {
			return fmt.Errorf("Compare: cell (%d,%d) %g vs %g: %w",
				idx/a.c, idx%a.c, a.data[idx], b.data[idx], ErrMismatch)
		}
	}

	return nil
}
