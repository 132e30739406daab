// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/spdisjoint/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is out of range.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is out of range.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrDistanceLength indicates a distance vector that does not match the graph.
	ErrDistanceLength = errors.New("flow: distance vector length does not match vertex count")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("flow: tolerance must be a non-negative number")
)

// FlowOptions configures MaxDisjointShortestPaths.
//   - Ctx: checked before every phase; nil means context.Background().
//   - Tolerance: tied-arc slack, default core.DefaultTolerance.
//   - Limit: stop once this many paths are found; 0 disables the limit.
type FlowOptions struct {
	Ctx       context.Context
	Tolerance float64
	Limit     int
}

// DefaultOptions returns FlowOptions with a background context, the default
// tolerance and no limit.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:       context.Background(),
		Tolerance: core.DefaultTolerance,
	}
}

// normalize fills the zero-value context and validates the tolerance.
func (o *FlowOptions) normalize() error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return ErrBadTolerance
	}
	if o.Limit < 0 {
		o.Limit = 0
	}

	return nil
}
