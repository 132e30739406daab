// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/spdisjoint/core"
)

const (
	maxLineBytes = 1 << 20
	// maxPrealloc caps capacity taken from the untrusted m header.
	maxPrealloc = 1 << 16
)

// parser carries the state of one Parse call.
type parser struct {
	opts  options
	doc   *Document
	stage int // 0: expecting n, 1: expecting m, 2: edge lines
	seen  int // edge lines consumed, accepted or skipped
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads the edge-list format from r.
//
// Under Strict the first fault is returned as a *LineError and the Document
// is nil. Under Lenient edge-line faults (and a short input) are collected in
// Document.Faults and the error is nil; header faults and read errors are
// returned under both policies.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	p := &parser{doc: &Document{}}
	for _, opt := range opts {
		opt(&p.opts)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		clean := stripComment(raw)
		if clean == "" {
			continue
		}
		if err := p.line(lineNo, raw, clean); err != nil {
			return nil, err
		}
		if p.stage == 2 && p.seen >= p.doc.Declared {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	if err := p.finish(); err != nil {
		return nil, err
	}

	return p.doc, nil
}

// line dispatches one non-blank line according to the current stage.
func (p *parser) line(lineNo int, raw, clean string) error {
	switch p.stage {
	case 0:
		n, err := headerInt(clean)
		if err != nil {
			return &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: node count: %v", ErrBadHeader, err)}
		}
		if n > core.MaxVertices {
			return &LineError{Line: lineNo, Text: raw,
				Err: fmt.Errorf("%w: node count %d exceeds %d", ErrBadHeader, n, core.MaxVertices)}
		}
		p.doc.Nodes = n
		p.stage = 1
	case 1:
		m, err := headerInt(clean)
		if err == nil && m < 0 {
			err = fmt.Errorf("negative value %d", m)
		}
		if err != nil {
			return &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: edge count: %v", ErrBadHeader, err)}
		}
		p.doc.Declared = m
		p.doc.Edges = make([]EdgeLine, 0, min(m, maxPrealloc))
		p.stage = 2
	default:
		p.seen++
		e, err := parseEdge(clean)
		if err != nil {
			return p.fault(&LineError{Line: lineNo, Text: raw, Err: err})
		}
		e.Line = lineNo
		p.doc.Edges = append(p.doc.Edges, e)
	}

	return nil
}

// finish checks that both headers and all declared edge lines were seen.
func (p *parser) finish() error {
	switch {
	case p.stage == 0:
		return &LineError{Err: fmt.Errorf("%w: missing node count", ErrBadHeader)}
	case p.stage == 1:
		return &LineError{Err: fmt.Errorf("%w: missing edge count", ErrBadHeader)}
	case p.seen < p.doc.Declared:
		return p.fault(&LineError{Err: fmt.Errorf("%w: %d of %d", ErrShortInput, p.seen, p.doc.Declared)})
	}

	return nil
}

// fault applies the policy to an edge-level fault.
func (p *parser) fault(le *LineError) error {
	if p.opts.policy == Lenient {
		p.doc.Faults = multierr.Append(p.doc.Faults, le)
		return nil
	}

	return le
}

// stripComment drops everything from the first '#' and trims spaces.
func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// headerInt parses the first token of a header line.
func headerInt(clean string) (int, error) {
	tok := strings.Fields(clean)[0]
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %q is not an integer", tok)
	}

	return v, nil
}

// parseEdge takes the first N<digits> token as U, the last one seen before
// the line is complete as V, and the first float as the weight. Scanning
// stops once U, V and the weight are all set.
func parseEdge(clean string) (EdgeLine, error) {
	clean = strings.NewReplacer("(", " ", ")", " ").Replace(clean)

	var (
		e         EdgeLine
		ids       int
		hasWeight bool
	)
	for _, tok := range strings.Fields(clean) {
		if ids == 2 && hasWeight {
			break
		}
		if strings.HasPrefix(tok, "N") {
			id, err := nodeID(tok)
			if err != nil {
				return e, err
			}
			if ids == 0 {
				e.U = id
				ids = 1
			} else {
				// Later ids replace V until the weight is found.
				e.V = id
				ids = 2
			}
			continue
		}
		if !hasWeight {
			if w, err := strconv.ParseFloat(tok, 64); err == nil {
				e.Weight = w
				hasWeight = true
			}
		}
	}

	switch {
	case ids < 2:
		return e, fmt.Errorf("%w: want two node ids, found %d", ErrBadEdgeLine, ids)
	case !hasWeight:
		return e, fmt.Errorf("%w: no weight", ErrBadEdgeLine)
	}

	return e, nil
}

// nodeID parses "N<digits>".
func nodeID(tok string) (int, error) {
	digits := tok[1:]
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadNodeID, tok)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadNodeID, tok)
		}
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadNodeID, tok, err)
	}

	return id, nil
}
