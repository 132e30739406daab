package analysis_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/spdisjoint/analysis"
	"github.com/katalvlaran/spdisjoint/builder"
	"github.com/katalvlaran/spdisjoint/config"
	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dfs"
)

func graphOf(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

func defaults() config.Analysis { return config.Default().Analysis }

// diamond plus isolated N4
var diamondEdges = [][3]float64{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}}

func TestRun_DiamondWithIsolatedNode(t *testing.T) {
	g := graphOf(t, 5, diamondEdges)
	res, err := analysis.Run(context.Background(), g, defaults(), nil)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Nodes)
	assert.Equal(t, 4, res.Edges)
	assert.Len(t, res.Pairs, 10)
	assert.Equal(t, 2, res.Components.Count())
	assert.Equal(t, 6, res.ConnectedPairs())

	p, ok := res.Pair(3, 0)
	require.True(t, ok)
	assert.Equal(t, 0, p.Source)
	assert.Equal(t, 3, p.Target)
	assert.Equal(t, 2.0, p.Cost)
	assert.Equal(t, []dfs.Path{{0, 1, 3}, {0, 2, 3}}, p.Paths)
	assert.Equal(t, []dfs.Path{{3, 1, 0}, {3, 2, 0}}, p.Reversed)
	assert.Equal(t, -1, p.MaxPaths)

	for s := 0; s < 4; s++ {
		p, ok = res.Pair(s, 4)
		require.True(t, ok)
		assert.True(t, p.Disconnected())
		assert.Empty(t, p.Paths)
		assert.Empty(t, p.Reversed)
	}

	_, ok = res.Pair(2, 2)
	assert.False(t, ok)
	assert.Empty(t, res.Warnings)
}

func TestRun_PairOrder(t *testing.T) {
	g := graphOf(t, 4, diamondEdges)
	res, err := analysis.Run(context.Background(), g, defaults(), nil)
	require.NoError(t, err)

	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Len(t, res.Pairs, len(want))
	for i, w := range want {
		assert.Equal(t, w[0], res.Pairs[i].Source)
		assert.Equal(t, w[1], res.Pairs[i].Target)
	}
}

func TestRun_TriangleSinglePath(t *testing.T) {
	g := graphOf(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}, {0, 2, 5}})
	res, err := analysis.Run(context.Background(), g, defaults(), nil)
	require.NoError(t, err)

	p, _ := res.Pair(0, 2)
	assert.Equal(t, 2.0, p.Cost)
	assert.Equal(t, []dfs.Path{{0, 1, 2}}, p.Paths)
	assert.Equal(t, 3, res.PathCount())
}

func TestRun_NegativeWeightWarns(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	g := graphOf(t, 3, [][3]float64{{0, 1, 2}, {1, 2, -1}})

	res, err := analysis.Run(context.Background(), g, defaults(), zap.New(obs))
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	w := res.Warnings[0]
	assert.Equal(t, analysis.WarnNegativeWeight, w.Kind)
	assert.Equal(t, "negative weight on edge N1-N2: -1.00", w.String())
	assert.Equal(t, 1, logs.FilterMessage(w.Message).Len())
}

func TestRun_NegativeEdgeAtSourceKeepsPaths(t *testing.T) {
	g := graphOf(t, 3, [][3]float64{{0, 1, -1}, {1, 2, 1}})

	res, err := analysis.Run(context.Background(), g, defaults(), nil)
	require.NoError(t, err)

	for s := 0; s < 3; s++ {
		d, err := res.Dist.At(s, s)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
	p, ok := res.Pair(0, 2)
	require.True(t, ok)
	assert.Equal(t, 0.0, p.Cost)
	assert.Equal(t, []dfs.Path{{0, 1, 2}}, p.Paths)
	for _, pr := range res.Pairs {
		assert.NotEmpty(t, pr.Paths, "N%d-N%d", pr.Source, pr.Target)
	}
}

func TestRun_AuditFlagsShortfall(t *testing.T) {
	g := graphOf(t, 6, [][3]float64{
		{0, 1, 1}, {0, 2, 1}, {1, 4, 1}, {1, 3, 1}, {2, 4, 1}, {3, 5, 1}, {4, 5, 1},
	})
	cfg := defaults()
	cfg.Audit = true

	res, err := analysis.Run(context.Background(), g, cfg, zap.NewNop())
	require.NoError(t, err)

	p, _ := res.Pair(0, 5)
	assert.Len(t, p.Paths, 1)
	assert.Equal(t, 2, p.MaxPaths)
	assert.True(t, p.Shortfall())

	var shortfalls []analysis.Warning
	for _, w := range res.Warnings {
		if w.Kind == analysis.WarnGreedyShortfall {
			shortfalls = append(shortfalls, w)
		}
	}
	require.NotEmpty(t, shortfalls)
	assert.Equal(t, 0, shortfalls[0].Source)
	assert.Equal(t, 5, shortfalls[0].Target)
	assert.Equal(t, "greedy search found 1 of 2 disjoint shortest paths for N0 -> N5", shortfalls[0].Message)

	for _, pr := range res.Pairs {
		assert.LessOrEqual(t, len(pr.Paths), pr.MaxPaths)
	}
}

func TestRun_CrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := core.NewGraph(25)
	require.NoError(t, err)
	for i := 0; i < 60; i++ {
		u, v := rng.Intn(25), rng.Intn(25)
		if u != v {
			require.NoError(t, g.AddEdge(u, v, 0.5+rng.Float64()*9))
		}
	}
	cfg := defaults()
	cfg.CrossCheck = true

	res, err := analysis.Run(context.Background(), g, cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	neg := graphOf(t, 2, [][3]float64{{0, 1, -1}})
	res, err = analysis.Run(context.Background(), neg, cfg, nil)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, analysis.WarnCrossCheck, res.Warnings[1].Kind)
}

func TestRun_SequentialMatchesParallel(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(builder.IntUniformWeightFn(1, 3))},
		builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	seq := defaults()
	seq.Workers = 1
	par := defaults()
	par.Workers = 8

	a, err := analysis.Run(context.Background(), g, seq, nil)
	require.NoError(t, err)
	b, err := analysis.Run(context.Background(), g, par, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Pairs, b.Pairs)

	for _, p := range a.Pairs {
		if p.Disconnected() {
			continue
		}
		require.NotEmpty(t, p.Paths)
		require.LessOrEqual(t, len(p.Paths), 3)
		row, err := a.Dist.Row(p.Source)
		require.NoError(t, err)
		require.NoError(t, dfs.Verify(g, p.Source, p.Target, p.Paths, row, core.DefaultTolerance))
		require.Equal(t, len(p.Paths), len(p.Reversed))
	}
}

func TestRun_GeneratedTopologies(t *testing.T) {
	cfg := defaults()
	cfg.Audit = true

	theta, err := builder.BuildGraph(nil, nil, builder.Theta(4, 3))
	require.NoError(t, err)
	res, err := analysis.Run(context.Background(), theta, cfg, nil)
	require.NoError(t, err)
	p, ok := res.Pair(0, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Cost)
	assert.Len(t, p.Paths, 3, "capped at K")
	assert.Equal(t, 3, p.MaxPaths, "audit is limited to K")
	assert.False(t, p.Shortfall())

	grid, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)
	res, err = analysis.Run(context.Background(), grid, cfg, nil)
	require.NoError(t, err)
	p, _ = res.Pair(0, 8)
	assert.Equal(t, 4.0, p.Cost)
	assert.Len(t, p.Paths, 2, "corner degree bounds the disjoint count")
	assert.Equal(t, 2, p.MaxPaths)
	assert.Equal(t, 1, res.Components.Count())
}

func TestRun_KZero(t *testing.T) {
	g := graphOf(t, 4, diamondEdges)
	cfg := defaults()
	cfg.K = 0
	cfg.Audit = true
	res, err := analysis.Run(context.Background(), g, cfg, nil)
	require.NoError(t, err)
	assert.Zero(t, res.PathCount())
	p, _ := res.Pair(0, 3)
	assert.False(t, math.IsInf(p.Cost, 1))
	assert.Empty(t, res.Warnings)
}

func TestRun_Errors(t *testing.T) {
	_, err := analysis.Run(context.Background(), nil, defaults(), nil)
	assert.ErrorIs(t, err, analysis.ErrNilGraph)

	g := graphOf(t, 4, diamondEdges)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = analysis.Run(ctx, g, defaults(), nil)
	assert.ErrorIs(t, err, context.Canceled)

	bad := defaults()
	bad.K = -1
	_, err = analysis.Run(context.Background(), g, bad, nil)
	assert.ErrorIs(t, err, dfs.ErrBadK)
}

func TestRun_RejectsOversizedGraph(t *testing.T) {
	g, err := core.NewGraph(analysis.MaxNodes + 1)
	require.NoError(t, err)
	_, err = analysis.Run(context.Background(), g, defaults(), nil)
	assert.ErrorIs(t, err, analysis.ErrTooLarge)
}

func TestRun_SingleNode(t *testing.T) {
	g := graphOf(t, 1, nil)
	res, err := analysis.Run(context.Background(), g, defaults(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, 1, res.Components.Count())
}

func TestWarningKindString(t *testing.T) {
	assert.Equal(t, "negative-weight", analysis.WarnNegativeWeight.String())
	assert.Equal(t, "greedy-shortfall", analysis.WarnGreedyShortfall.String())
	assert.Equal(t, "cross-check", analysis.WarnCrossCheck.String())
}
