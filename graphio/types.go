// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrBadHeader indicates a missing or non-integer n or m line.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadEdgeLine indicates an edge line with fewer than two node ids or no weight.
	ErrBadEdgeLine = errors.New("graphio: bad edge line")

	// ErrBadNodeID indicates an N-prefixed token not followed by digits.
	ErrBadNodeID = errors.New("graphio: bad node id")

	// ErrShortInput indicates fewer edge lines than the header declared.
	ErrShortInput = errors.New("graphio: fewer edge lines than declared")
)

// LineError locates a fault in the input.
type LineError struct {
	Line int    // 1-based physical line number, 0 when the fault has no line
	Text string // raw line text
	Err  error  // one of the package sentinels or a core error
}

func (e *LineError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// Policy selects how Parse reacts to edge-line faults.
type Policy int

const (
	// Strict aborts on the first fault.
	Strict Policy = iota
	// Lenient skips faulty edge lines and aggregates them.
	Lenient
)

// String returns "strict" or "lenient".
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// EdgeLine is one parsed edge with its source line.
type EdgeLine struct {
	Line   int
	U, V   int
	Weight float64
}

// Document is the parsed form of one input.
type Document struct {
	Nodes    int        // n from the first header line
	Declared int        // m from the second header line
	Edges    []EdgeLine // accepted edge lines, input order

	// Faults aggregates the skipped lines under Lenient; nil under Strict.
	Faults error
}

// FaultList splits Faults into its individual *LineError values.
func (d *Document) FaultList() []error {
	return multierr.Errors(d.Faults)
}

// Option configures Parse.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy sets the fault policy. Unknown values fall back to Strict.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p == Lenient {
			o.policy = Lenient
			return
		}
		o.policy = Strict
	}
}
