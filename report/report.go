// SPDX-License-Identifier: MIT

// Package report renders an analysis.Result for people: the line-oriented
// text layout, a go-pretty table, or nothing but the timing line.
//
// The text layout, per unordered pair s < t:
//
//	Pair: N0 -> N3  (min cost = 2.00)
//	  Path 1:  N0 -> N1 -> N3
//	  Path 2:  N0 -> N2 -> N3
//	Pair: N3 -> N0  (min cost = 2.00)
//	  Path 1:  N3 -> N1 -> N0
//	  Path 2:  N3 -> N2 -> N0
//
// and for a pair with no path:
//
//	Pair: N0 -> N4  (disconnected)
//	Pair: N4 -> N0  (disconnected)
//
// Every pair block is preceded by a blank line. Warnings and a one-line
// summary follow the pairs.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/spdisjoint/analysis"
	"github.com/katalvlaran/spdisjoint/config"
	"github.com/katalvlaran/spdisjoint/dfs"
)

// ErrUnknownFormat is returned by Write for a format it cannot render.
var ErrUnknownFormat = errors.New("report: unknown format")

// Options selects the layout.
type Options struct {
	Format    string // config.FormatText, FormatTable or FormatNone
	Precision int    // digits after the decimal point for costs
	Timing    bool   // append "Total time: ... s"
}

// FromConfig copies the report section of a run configuration.
func FromConfig(c config.Report) Options {
	return Options{Format: c.Format, Precision: c.Precision, Timing: c.Timing}
}

// Write renders res to w.
func Write(w io.Writer, res *analysis.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	var err error
	switch opts.Format {
	case config.FormatText, "":
		err = writeText(bw, res, opts.Precision)
	case config.FormatTable:
		err = writeTable(bw, res, opts.Precision)
	case config.FormatNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return err
	}
	if opts.Timing {
		fmt.Fprintf(bw, "\nTotal time: %.6f s\n", res.Elapsed.Seconds())
	}

	return bw.Flush()
}

// writeText emits the line-oriented layout.
func writeText(w *bufio.Writer, res *analysis.Result, prec int) error {
	for i := range res.Pairs {
		p := &res.Pairs[i]
		w.WriteByte('\n')
		if p.Disconnected() {
			fmt.Fprintf(w, "Pair: N%d -> N%d  (disconnected)\n", p.Source, p.Target)
			fmt.Fprintf(w, "Pair: N%d -> N%d  (disconnected)\n", p.Target, p.Source)
			continue
		}
		writeDirection(w, p.Source, p.Target, p.Cost, prec, p.Paths)
		writeDirection(w, p.Target, p.Source, p.Cost, prec, p.Reversed)
	}

	if len(res.Warnings) > 0 {
		w.WriteString("\nWarnings:\n")
		for _, wr := range res.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Kind, wr.Message)
		}
	}

	fmt.Fprintf(w, "\n%s\n", summaryLine(res))

	return nil
}

func writeDirection(w *bufio.Writer, from, to int, cost float64, prec int, paths []dfs.Path) {
	fmt.Fprintf(w, "Pair: N%d -> N%d  (min cost = %.*f)\n", from, to, prec, cost)
	for k, p := range paths {
		fmt.Fprintf(w, "  Path %d:  %s\n", k+1, p)
	}
}

// summaryLine renders the one-line run summary.
func summaryLine(res *analysis.Result) string {
	comps := 0
	if res.Components != nil {
		comps = res.Components.Count()
	}

	return fmt.Sprintf("Nodes: %d  Edges: %d  Components: %d  Connected pairs: %d/%d  Paths: %d  Warnings: %d",
		res.Nodes, res.Edges, comps, res.ConnectedPairs(), len(res.Pairs), res.PathCount(), len(res.Warnings))
}
