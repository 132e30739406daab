// Package dfs defines paths, the banned-edge set, sentinel errors and the
// functional options of the disjoint-path search.
package dfs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spdisjoint/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates a source or target outside [0, n).
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrBadK indicates a negative path count.
	ErrBadK = errors.New("dfs: k must be non-negative")

	// ErrDistanceLength indicates a distance vector that does not match the graph.
	ErrDistanceLength = errors.New("dfs: distance vector length does not match vertex count")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("dfs: tolerance must be a non-negative number")

	// ErrPathNotSimple indicates a path visiting a vertex twice (or an empty path).
	ErrPathNotSimple = errors.New("dfs: path is not simple")

	// ErrPathEndpoints indicates a path that does not run from source to target.
	ErrPathEndpoints = errors.New("dfs: path endpoints do not match")

	// ErrMissingEdge indicates consecutive path vertices with no stored edge.
	ErrMissingEdge = errors.New("dfs: consecutive vertices are not adjacent")

	// ErrPathCost indicates a path whose cost differs from the shortest distance.
	ErrPathCost = errors.New("dfs: path cost differs from shortest distance")

	// ErrSharedEdge indicates two paths using the same undirected edge.
	ErrSharedEdge = errors.New("dfs: paths share an edge")
)

// Path is an ordered sequence of vertex ids [s, ..., t]. Paths returned by
// DisjointPaths are never modified afterwards.
type Path []int

// Reverse returns a new path with the vertices in opposite order.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[len(p)-1-i]
	}

	return out
}

// Edges returns the normalized keys of the edges traversed by p.
func (p Path) Edges() []core.EdgeKey {
	if len(p) < 2 {
		return nil
	}
	out := make([]core.EdgeKey, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		out = append(out, core.NewEdgeKey(p[i], p[i+1]))
	}

	return out
}

// Cost sums, for each hop, the cheapest stored edge between its endpoints.
// Returns ErrMissingEdge when a hop has no edge.
func (p Path) Cost(g *core.Graph) (float64, error) {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		w, ok := g.MinWeight(p[i], p[i+1])
		if !ok {
			return math.Inf(1), fmt.Errorf("%w: N%d-N%d", ErrMissingEdge, p[i], p[i+1])
		}
		total += w
	}

	return total, nil
}

// String renders p as "N0 -> N5 -> N12".
func (p Path) String() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "N%d", v)
	}

	return sb.String()
}

// BannedSet is a set of undirected edges excluded from the search.
// (u,v) and (v,u) are the same member. The zero value is not usable; call
// NewBannedSet.
type BannedSet struct {
	keys map[core.EdgeKey]struct{}
}

// NewBannedSet returns an empty set.
func NewBannedSet() *BannedSet {
	return &BannedSet{keys: make(map[core.EdgeKey]struct{})}
}

// Ban adds the undirected edge u-v.
func (b *BannedSet) Ban(u, v int) {
	b.keys[core.NewEdgeKey(u, v)] = struct{}{}
}

// BanPath adds every edge traversed by p.
func (b *BannedSet) BanPath(p Path) {
	for i := 0; i+1 < len(p); i++ {
		b.Ban(p[i], p[i+1])
	}
}

// Contains reports whether u-v is banned.
func (b *BannedSet) Contains(u, v int) bool {
	_, ok := b.keys[core.NewEdgeKey(u, v)]
	return ok
}

// Len returns the number of banned edges.
func (b *BannedSet) Len() int { return len(b.keys) }

// clone returns an independent copy; nil clones to an empty set.
func (b *BannedSet) clone() *BannedSet {
	out := NewBannedSet()
	if b == nil {
		return out
	}
	for k := range b.keys {
		out.keys[k] = struct{}{}
	}

	return out
}

// Option configures DisjointPaths.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Tolerance is the absolute slack of the tied-edge test. Default core.DefaultTolerance.
	Tolerance float64

	// Banned seeds the banned-edge set. The caller's set is copied, never mutated.
	Banned *BannedSet

	err error
}

// DefaultOptions returns Options with the default tolerance and no seed edges.
func DefaultOptions() Options {
	return Options{Tolerance: core.DefaultTolerance}
}

// WithTolerance overrides the tied-edge tolerance. Negative or NaN values are
// reported as ErrBadTolerance by DisjointPaths.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: %g", ErrBadTolerance, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithBanned seeds the search with edges that must not be used, e.g. links
// known to be down.
func WithBanned(b *BannedSet) Option {
	return func(o *Options) {
		o.Banned = b
	}
}
