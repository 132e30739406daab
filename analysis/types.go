// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/spdisjoint/bfs"
	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/dfs"
	"github.com/katalvlaran/spdisjoint/matrix"
)

var (
	// ErrNilGraph is returned by Run for a nil graph.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrTooLarge is returned by Run for a graph with more than MaxNodes vertices.
	ErrTooLarge = errors.New("analysis: graph too large for all-pairs analysis")
)

// MaxNodes bounds the vertex count Run accepts; the pair table and the
// distance table both grow with n².
const MaxNodes = 10_000

// WarningKind classifies a non-fatal finding.
type WarningKind int

const (
	// WarnNegativeWeight flags an edge with weight < 0. Distances involving
	// it are still computed but are not guaranteed minimal.
	WarnNegativeWeight WarningKind = iota + 1

	// WarnGreedyShortfall flags a pair where the greedy extractor returned
	// fewer paths than min(K, maximum disjoint shortest paths).
	WarnGreedyShortfall

	// WarnCrossCheck flags a cell where the Dijkstra table and the
	// Floyd–Warshall closure disagree, or a skipped cross check.
	WarnCrossCheck
)

// String returns a short kebab-case label.
func (k WarningKind) String() string {
	switch k {
	case WarnNegativeWeight:
		return "negative-weight"
	case WarnGreedyShortfall:
		return "greedy-shortfall"
	case WarnCrossCheck:
		return "cross-check"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is one finding reported next to the results.
type Warning struct {
	Kind    WarningKind
	Edge    core.Edge // WarnNegativeWeight
	Source  int       // WarnGreedyShortfall
	Target  int       // WarnGreedyShortfall
	Found   int       // greedy path count
	Maximum int       // flow bound
	Message string
}

func (w Warning) String() string { return w.Message }

func negativeWeight(e core.Edge) Warning {
	return Warning{
		Kind:    WarnNegativeWeight,
		Edge:    e,
		Source:  -1,
		Target:  -1,
		Message: fmt.Sprintf("negative weight on edge N%d-N%d: %.2f", e.From, e.To, e.Weight),
	}
}

func greedyShortfall(s, t, found, maximum int) Warning {
	return Warning{
		Kind:    WarnGreedyShortfall,
		Source:  s,
		Target:  t,
		Found:   found,
		Maximum: maximum,
		Message: fmt.Sprintf("greedy search found %d of %d disjoint shortest paths for N%d -> N%d",
			found, maximum, s, t),
	}
}

func crossCheck(msg string) Warning {
	return Warning{Kind: WarnCrossCheck, Source: -1, Target: -1, Message: msg}
}

// PairResult is the outcome for one unordered pair (Source < Target).
type PairResult struct {
	Source int
	Target int

	// Cost is the minimum cost, +Inf when the pair is disconnected.
	Cost float64

	// Paths run Source → Target; Reversed holds the same paths Target → Source.
	Paths    []dfs.Path
	Reversed []dfs.Path

	// MaxPaths is the audited maximum number of disjoint shortest paths,
	// capped at K; -1 when the audit did not run.
	MaxPaths int
}

// Disconnected reports whether no path joins the pair.
func (p PairResult) Disconnected() bool { return math.IsInf(p.Cost, 1) }

// Shortfall reports whether the audit proved more paths were available.
func (p PairResult) Shortfall() bool {
	return p.MaxPaths >= 0 && len(p.Paths) < p.MaxPaths
}

// Result is the outcome of one Run.
type Result struct {
	Nodes int
	Edges int
	K     int

	// Dist is the all-pairs table; row s is the distance vector of s.
	Dist *matrix.Dense

	// Pairs holds every unordered pair in (Source, Target) lexicographic order.
	Pairs []PairResult

	Components *bfs.ComponentsResult
	Warnings   []Warning

	// Elapsed covers the distance table, extraction and audit.
	Elapsed time.Duration
}

// ConnectedPairs counts pairs with a finite cost.
func (r *Result) ConnectedPairs() int {
	c := 0
	for i := range r.Pairs {
		if !r.Pairs[i].Disconnected() {
			c++
		}
	}

	return c
}

// PathCount counts the extracted Source → Target paths over all pairs.
func (r *Result) PathCount() int {
	c := 0
	for i := range r.Pairs {
		c += len(r.Pairs[i].Paths)
	}

	return c
}

// Pair returns the result for {s, t} in either order.
func (r *Result) Pair(s, t int) (PairResult, bool) {
	if s > t {
		s, t = t, s
	}
	if s < 0 || s == t || t >= r.Nodes {
		return PairResult{}, false
	}

	return r.Pairs[pairIndex(r.Nodes, s, t)], true
}

// pairIndex maps s < t to its slot in the lexicographic pair order.
func pairIndex(n, s, t int) int {
	return s*n - s*(s+1)/2 + (t - s - 1)
}
