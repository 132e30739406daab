// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

// arc is one residual arc. The paired reverse arc lives at index i^1.
type arc struct {
	to  int
	cap int
}

// network is a unit-capacity residual network over dense vertex ids.
type network struct {
	arcs []arc
	adj  [][]int // adj[u] holds indices into arcs
}

func newNetwork(n int) *network {
	return &network{adj: make([][]int, n)}
}

// addArc inserts u→v with capacity c and its zero-capacity reverse.
func (nw *network) addArc(u, v, c int) {
	nw.adj[u] = append(nw.adj[u], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: v, cap: c})
	nw.adj[v] = append(nw.adj[v], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: u, cap: 0})
}

// tied direction bits of one edge identity
const (
	tiedForward  = 1 << iota // key.U → key.V
	tiedBackward             // key.V → key.U
)

// buildTiedNetwork keeps the edges that lie on a shortest path from the
// source of dist. Parallel edges collapse into one identity; each tied
// direction of an identity becomes a unit-capacity arc.
//
// Steps:
//  1. Walk g.Edges() once (one entry per undirected edge, insertion order).
//  2. Skip loops and edges whose tail is unreachable.
//  3. Record, per EdgeKey, which directions satisfy dist[u]+w ≈ dist[v].
//  4. Emit the arcs in first-seen key order.
//
// Complexity: O(V + E) time and memory.
func buildTiedNetwork(g *core.Graph, dist dijkstra.Vector, tol float64) *network {
	var (
		dirs  = make(map[core.EdgeKey]uint8)
		order []core.EdgeKey
	)
	mark := func(u, v int, w float64) {
		if math.IsInf(dist[u], 1) || !core.ApproxEqual(dist[u]+w, dist[v], tol) {
			return
		}
		key := core.NewEdgeKey(u, v)
		bit := uint8(tiedForward)
		if u != key.U {
			bit = tiedBackward
		}
		prev, seen := dirs[key]
		if !seen {
			order = append(order, key)
		}
		dirs[key] = prev | bit
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		mark(e.From, e.To, e.Weight)
		mark(e.To, e.From, e.Weight)
	}

	nw := newNetwork(g.VertexCount())
	for _, key := range order {
		d := dirs[key]
		if d&tiedForward != 0 {
			nw.addArc(key.U, key.V, 1)
		}
		if d&tiedBackward != 0 {
			nw.addArc(key.V, key.U, 1)
		}
	}

	return nw
}
