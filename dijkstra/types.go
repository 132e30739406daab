// Package dijkstra defines the distance vector type, sentinel errors and
// options for the all-pairs driver.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Sentinel errors returned by the Distance Oracle.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source id is outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("dijkstra: workers must be non-negative")
)

// Vector is a dense single-source distance vector: Vector[v] is the shortest
// distance from the source to v, or +Inf when v is unreachable.
type Vector []float64

// Reachable reports whether t has a finite distance.
func (v Vector) Reachable(t int) bool {
	return t >= 0 && t < len(v) && !math.IsInf(v[t], 1)
}

// Options configures AllPairs.
//
// Workers – number of concurrent Dijkstra runs. 0 means runtime.GOMAXPROCS(0).
type Options struct {
	Workers int

	err error // first invalid option, reported by AllPairs
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithWorkers bounds the number of sources processed concurrently.
// 1 makes AllPairs fully sequential; 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}
