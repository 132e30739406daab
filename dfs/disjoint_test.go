package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dfs"
	"github.com/katalvlaran/spdisjoint/dijkstra"
)

type edge struct {
	u, v int
	w    float64
}

func buildGraph(t *testing.T, n int, edges []edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

func distFrom(t *testing.T, g *core.Graph, s int) dijkstra.Vector {
	t.Helper()
	d, err := dijkstra.ShortestDistances(g, s)
	require.NoError(t, err)

	return d
}

// crossGraph has two disjoint shortest routes 0-1-3-5 and 0-2-4-5, plus a
// cross edge 1-4 inserted before 1-3 so insertion-order DFS takes 0-1-4-5
// first and starves the second attempt.
var crossEdges = []edge{
	{0, 1, 1}, {0, 2, 1}, {1, 4, 1}, {1, 3, 1}, {2, 4, 1}, {3, 5, 1}, {4, 5, 1},
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDisjointPaths_Validation(t *testing.T) {
	g := buildGraph(t, 3, []edge{{0, 1, 1}})
	d := distFrom(t, g, 0)

	_, err := dfs.DisjointPaths(nil, 0, 1, 1, d)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DisjointPaths(g, 0, 1, -1, d)
	assert.ErrorIs(t, err, dfs.ErrBadK)

	_, err = dfs.DisjointPaths(g, 3, 1, 1, d)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)

	_, err = dfs.DisjointPaths(g, 0, -1, 1, d)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)

	_, err = dfs.DisjointPaths(g, 0, 1, 1, d[:2])
	assert.ErrorIs(t, err, dfs.ErrDistanceLength)

	_, err = dfs.DisjointPaths(g, 0, 1, 1, d, dfs.WithTolerance(-1))
	assert.ErrorIs(t, err, dfs.ErrBadTolerance)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestDisjointPaths_TriangleSinglePath(t *testing.T) {
	g := buildGraph(t, 3, []edge{{0, 1, 1}, {1, 2, 1}, {0, 2, 5}})
	d := distFrom(t, g, 0)
	require.Equal(t, 2.0, d[2])

	paths, err := dfs.DisjointPaths(g, 0, 2, 3, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 2}}, paths)
}

func TestDisjointPaths_TwoParallelRoutes(t *testing.T) {
	g := buildGraph(t, 4, []edge{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}})
	d := distFrom(t, g, 0)
	require.Equal(t, 2.0, d[3])

	paths, err := dfs.DisjointPaths(g, 0, 3, 2, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 3}, {0, 2, 3}}, paths)
	require.NoError(t, dfs.Verify(g, 0, 3, paths, d, core.DefaultTolerance))
}

func TestDisjointPaths_Unreachable(t *testing.T) {
	g := buildGraph(t, 5, []edge{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}})
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 4, 3, d)
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestDisjointPaths_SourceEqualsTarget(t *testing.T) {
	g := buildGraph(t, 2, []edge{{0, 1, 1}})
	d := distFrom(t, g, 1)

	paths, err := dfs.DisjointPaths(g, 1, 1, 3, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{1}}, paths)
}

func TestDisjointPaths_ZeroK(t *testing.T) {
	g := buildGraph(t, 2, []edge{{0, 1, 1}})
	paths, err := dfs.DisjointPaths(g, 0, 1, 0, distFrom(t, g, 0))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDisjointPaths_StopsAtK(t *testing.T) {
	// three parallel two-hop routes 0-x-4
	g := buildGraph(t, 5, []edge{
		{0, 1, 1}, {1, 4, 1}, {0, 2, 1}, {2, 4, 1}, {0, 3, 1}, {3, 4, 1},
	})
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 4, 2, d)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = dfs.DisjointPaths(g, 0, 4, 5, d)
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestDisjointPaths_GreedyShortfall(t *testing.T) {
	g := buildGraph(t, 6, crossEdges)
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 5, 3, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 4, 5}}, paths)
}

func TestDisjointPaths_SortedAdjacencyChangesChoice(t *testing.T) {
	g := buildGraph(t, 6, crossEdges, core.WithSortedAdjacency())
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 5, 3, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 3, 5}, {0, 2, 4, 5}}, paths)
}

func TestDisjointPaths_BacktracksOutOfDeadEnd(t *testing.T) {
	// 0-1 is tied toward 2 (dist 1) but 2 only reaches target 3 through 0-4-3.
	g := buildGraph(t, 5, []edge{{0, 1, 1}, {1, 2, 1}, {0, 4, 1}, {4, 3, 1}})
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 3, 1, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 4, 3}}, paths)
}

func TestDisjointPaths_SeededBannedSet(t *testing.T) {
	g := buildGraph(t, 4, []edge{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}})
	d := distFrom(t, g, 0)

	seed := dfs.NewBannedSet()
	seed.Ban(3, 1)
	paths, err := dfs.DisjointPaths(g, 0, 3, 2, d, dfs.WithBanned(seed))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 2, 3}}, paths)
	assert.Equal(t, 1, seed.Len(), "caller's set must not be mutated")
}

func TestDisjointPaths_ToleranceAbsorbsRounding(t *testing.T) {
	// 0.1+0.2 != 0.3 in float64; both routes are shortest within 1e-7.
	g := buildGraph(t, 4, []edge{{0, 1, 0.1}, {1, 3, 0.2}, {0, 2, 0.2}, {2, 3, 0.1}})
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 3, 2, d)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	strict, err := dfs.DisjointPaths(g, 0, 3, 2, d, dfs.WithTolerance(0))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(strict), 2)
}

func TestDisjointPaths_ParallelEdgesShareIdentity(t *testing.T) {
	// two parallel 0-1 edges are one undirected identity: only one path.
	g := buildGraph(t, 2, []edge{{0, 1, 1}, {1, 0, 1}})
	d := distFrom(t, g, 0)

	paths, err := dfs.DisjointPaths(g, 0, 1, 3, d)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1}}, paths)
}

// ------------------------------------------------------------------------
// 3. Properties on random graphs
// ------------------------------------------------------------------------

func TestDisjointPaths_RandomGraphsSatisfyVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 10; round++ {
		n := 12 + rng.Intn(10)
		g, err := core.NewGraph(n)
		require.NoError(t, err)
		for i := 0; i < 3*n; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			// small integer weights create many ties
			require.NoError(t, g.AddEdge(u, v, float64(1+rng.Intn(3))))
		}

		for s := 0; s < n; s++ {
			d := distFrom(t, g, s)
			for tgt := 0; tgt < n; tgt++ {
				paths, err := dfs.DisjointPaths(g, s, tgt, 3, d)
				require.NoError(t, err)
				require.LessOrEqual(t, len(paths), 3)
				require.Equal(t, d.Reachable(tgt), len(paths) > 0)
				for _, p := range paths {
					require.GreaterOrEqual(t, len(p), 1)
				}
				require.NoError(t, dfs.Verify(g, s, tgt, paths, d, core.DefaultTolerance))
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Verify and Path helpers
// ------------------------------------------------------------------------

func TestVerify_Violations(t *testing.T) {
	g := buildGraph(t, 4, []edge{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}, {0, 3, 5}})
	d := distFrom(t, g, 0)
	tol := core.DefaultTolerance

	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{1, 3}}, d, tol), dfs.ErrPathEndpoints)
	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{}}, d, tol), dfs.ErrPathEndpoints)
	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{0, 1, 0, 1, 3}}, d, tol), dfs.ErrPathNotSimple)
	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{0, 3}}, d, tol), dfs.ErrPathCost)
	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{0, 1, 2, 3}}, d, tol), dfs.ErrMissingEdge)
	assert.ErrorIs(t, dfs.Verify(g, 0, 3, []dfs.Path{{0, 1, 3}, {0, 1, 3}}, d, tol), dfs.ErrSharedEdge)
	assert.ErrorIs(t, dfs.Verify(nil, 0, 3, nil, d, tol), dfs.ErrGraphNil)
	assert.NoError(t, dfs.Verify(g, 0, 3, nil, d, tol))
}

func TestPath_Helpers(t *testing.T) {
	p := dfs.Path{0, 5, 12}
	assert.Equal(t, "N0 -> N5 -> N12", p.String())
	assert.Equal(t, dfs.Path{12, 5, 0}, p.Reverse())
	assert.Equal(t, dfs.Path{0, 5, 12}, p, "Reverse must not modify the receiver")
	assert.Equal(t, []core.EdgeKey{{U: 0, V: 5}, {U: 5, V: 12}}, p.Edges())
	assert.Nil(t, dfs.Path{3}.Edges())

	g := buildGraph(t, 3, []edge{{0, 1, 1.5}, {1, 2, 2}})
	cost, err := dfs.Path{2, 1, 0}.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cost)
}

func TestBannedSet(t *testing.T) {
	b := dfs.NewBannedSet()
	b.BanPath(dfs.Path{4, 2, 7})
	assert.True(t, b.Contains(2, 4))
	assert.True(t, b.Contains(7, 2))
	assert.False(t, b.Contains(4, 7))
	assert.Equal(t, 2, b.Len())
}
