// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/spdisjoint/core"
)

// Constructor is one topology over vertex ids [0, Vertices()).
// Parameter faults are recorded by the factory and reported by BuildGraph.
type Constructor struct {
	method string
	n      int
	err    error
	emit   func(e *emitter) error
}

// Method names the topology, e.g. "Grid".
func (c Constructor) Method() string { return c.method }

// Vertices is the number of vertices the topology needs.
func (c Constructor) Vertices() int { return c.n }

// invalid records a parameter fault for BuildGraph to return.
func invalid(method string, err error) Constructor {
	return Constructor{method: method, err: fmt.Errorf("%s: %w", method, err)}
}

// emitter adds weighted edges to g, drawing weights from cfg.
type emitter struct {
	g   *core.Graph
	cfg builderConfig
}

// edge adds {u, v} with the next weight from the generator.
func (e *emitter) edge(u, v int) error {
	w := e.cfg.weightFn(e.cfg.rng)
	if err := e.g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("AddEdge(N%d, N%d, %g): %w", u, v, w, err)
	}

	return nil
}

// BuildGraph creates a core.Graph with as many vertices as the largest
// constructor needs, configured by gopts, and applies cons in order with the
// configuration resolved from bopts.
//
// Errors: ErrConstructFailed for an empty or zero constructor list, the
// sentinel recorded by a constructor factory, or a wrapped core error.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}
	n := 0
	for i, c := range cons {
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", c.err)
		}
		if c.emit == nil {
			return nil, fmt.Errorf("BuildGraph: zero constructor at index %d: %w", i, ErrConstructFailed)
		}
		n = max(n, c.n)
	}

	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	e := &emitter{g: g, cfg: newBuilderConfig(bopts...)}
	for _, c := range cons {
		if err = c.emit(e); err != nil {
			return nil, fmt.Errorf("BuildGraph: %s: %w", c.method, err)
		}
	}

	return g, nil
}
