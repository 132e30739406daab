// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, k, length)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not assemble a graph
// (no constructors, or a zero Constructor value).
var ErrConstructFailed = errors.New("builder: construction failed")
