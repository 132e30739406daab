// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spdisjoint/bfs"
	"github.com/katalvlaran/spdisjoint/config"
	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dfs"
	"github.com/katalvlaran/spdisjoint/dijkstra"
	"github.com/katalvlaran/spdisjoint/flow"
	"github.com/katalvlaran/spdisjoint/matrix"
)

// runner carries the state of one Run.
type runner struct {
	g    *core.Graph
	cfg  config.Analysis
	log  *zap.Logger
	n    int
	dist *matrix.Dense
	res  *Result
}

// Run computes the all-pairs table of g and, for every unordered pair, up to
// cfg.K edge-disjoint shortest paths.
//
// Steps:
//  1. Record one WarnNegativeWeight per negative edge.
//  2. Label connected components.
//  3. Build the distance table with dijkstra.AllPairs.
//  4. Optionally cross-check it against Floyd–Warshall.
//  5. Extract paths per source row in parallel; with cfg.Audit, bound each
//     pair with flow.MaxDisjointShortestPaths and flag greedy shortfalls.
//
// log may be nil. Cancellation of ctx aborts the run with ctx.Err().
func Run(ctx context.Context, g *core.Graph, cfg config.Analysis, log *zap.Logger) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()

	n := g.VertexCount()
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes > %d", ErrTooLarge, n, MaxNodes)
	}
	r := &runner{
		g:   g,
		cfg: cfg,
		log: log,
		n:   n,
		res: &Result{
			Nodes: n,
			Edges: g.EdgeCount(),
			K:     cfg.K,
			Pairs: make([]PairResult, n*(n-1)/2),
		},
	}

	// 1) Negative weights
	for _, e := range g.NegativeEdges() {
		w := negativeWeight(e)
		r.res.Warnings = append(r.res.Warnings, w)
		log.Warn(w.Message, zap.Int("from", e.From), zap.Int("to", e.To), zap.Float64("weight", e.Weight))
	}

	// 2) Components
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("analysis: components: %w", err)
	}
	r.res.Components = comps
	log.Debug("components labelled", zap.Int("count", comps.Count()))

	// 3) Distance table
	t0 := time.Now()
	r.dist, err = dijkstra.AllPairs(ctx, g, dijkstra.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("analysis: distances: %w", err)
	}
	r.res.Dist = r.dist
	log.Debug("distance table ready", zap.Int("nodes", n), zap.Duration("took", time.Since(t0)))

	// 4) Cross check
	if cfg.CrossCheck {
		if err = r.crossCheck(); err != nil {
			return nil, err
		}
	}

	// 5) Pairs
	t0 = time.Now()
	if err = r.extract(ctx); err != nil {
		return nil, err
	}
	r.collectShortfalls()
	log.Debug("paths extracted",
		zap.Int("pairs", len(r.res.Pairs)),
		zap.Int("paths", r.res.PathCount()),
		zap.Duration("took", time.Since(t0)))

	r.res.Elapsed = time.Since(start)
	log.Info("analysis complete",
		zap.Int("nodes", n),
		zap.Int("edges", r.res.Edges),
		zap.Int("connected_pairs", r.res.ConnectedPairs()),
		zap.Int("warnings", len(r.res.Warnings)),
		zap.Duration("elapsed", r.res.Elapsed))

	return r.res, nil
}

// crossCheck compares the table with a Floyd–Warshall closure. Mismatches
// become warnings; only internal failures are returned.
func (r *runner) crossCheck() error {
	switch {
	case r.n > config.MaxCrossCheckNodes:
		w := crossCheck(fmt.Sprintf("cross check skipped: %d nodes exceeds %d", r.n, config.MaxCrossCheckNodes))
		r.res.Warnings = append(r.res.Warnings, w)
		r.log.Warn(w.Message)
		return nil
	case len(r.g.NegativeEdges()) > 0:
		w := crossCheck("cross check skipped: negative weights make the closure diverge")
		r.res.Warnings = append(r.res.Warnings, w)
		r.log.Warn(w.Message)
		return nil
	}

	fw, err := matrix.FromGraph(r.g)
	if err != nil {
		return fmt.Errorf("analysis: cross check: %w", err)
	}
	if err = matrix.FloydWarshall(fw); err != nil {
		return fmt.Errorf("analysis: cross check: %w", err)
	}
	eps := math.Max(r.cfg.Tolerance, core.DefaultTolerance)
	if err = matrix.Compare(r.dist, fw, eps); err != nil {
		if !errors.Is(err, matrix.ErrMismatch) {
			return fmt.Errorf("analysis: cross check: %w", err)
		}
		w := crossCheck(err.Error())
		r.res.Warnings = append(r.res.Warnings, w)
		r.log.Warn("distance table disagrees with Floyd-Warshall", zap.Error(err))
		return nil
	}
	r.log.Debug("cross check passed", zap.Float64("eps", eps))

	return nil
}

// extract fills r.res.Pairs, one task per source row. Each task writes only
// the slots of its own row.
func (r *runner) extract(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)
	for s := 0; s < r.n-1; s++ {
		s := s // per-iteration copy (go.mod targets Go 1.21)
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return r.extractRow(egCtx, s)
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("analysis: extract: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis: extract: %w", err)
	}

	return nil
}

// extractRow handles every pair (s, t) with t > s.
func (r *runner) extractRow(ctx context.Context, s int) error {
	row, err := r.dist.Row(s)
	if err != nil {
		return err
	}
	dist := dijkstra.Vector(row)
	base := pairIndex(r.n, s, s+1)
	for t := s + 1; t < r.n; t++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		pr := PairResult{Source: s, Target: t, Cost: dist[t], MaxPaths: -1}
		if !pr.Disconnected() {
			pr.Paths, err = dfs.DisjointPaths(r.g, s, t, r.cfg.K, dist, dfs.WithTolerance(r.cfg.Tolerance))
			if err != nil {
				return fmt.Errorf("pair N%d-N%d: %w", s, t, err)
			}
			pr.Reversed = make([]dfs.Path, len(pr.Paths))
			for i, p := range pr.Paths {
				pr.Reversed[i] = p.Reverse()
			}
			if r.cfg.Audit && r.cfg.K > 0 {
				if pr.MaxPaths, err = r.audit(ctx, s, t, dist); err != nil {
					return fmt.Errorf("pair N%d-N%d: %w", s, t, err)
				}
			}
		} else {
			pr.Paths = []dfs.Path{}
			pr.Reversed = []dfs.Path{}
		}
		r.res.Pairs[base+(t-s-1)] = pr
	}

	return nil
}

// audit returns min(K, maximum disjoint shortest paths) for (s, t).
func (r *runner) audit(ctx context.Context, s, t int, dist dijkstra.Vector) (int, error) {
	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	opts.Tolerance = r.cfg.Tolerance
	opts.Limit = r.cfg.K

	return flow.MaxDisjointShortestPaths(r.g, s, t, dist, opts)
}

// collectShortfalls turns audited pairs into warnings in pair order.
func (r *runner) collectShortfalls() {
	for i := range r.res.Pairs {
		p := &r.res.Pairs[i]
		if !p.Shortfall() {
			continue
		}
		w := greedyShortfall(p.Source, p.Target, len(p.Paths), p.MaxPaths)
		r.res.Warnings = append(r.res.Warnings, w)
		r.log.Warn(w.Message,
			zap.Int("source", p.Source),
			zap.Int("target", p.Target),
			zap.Int("found", w.Found),
			zap.Int("max", w.Maximum))
	}
}
