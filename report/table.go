// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/spdisjoint/analysis"
	"github.com/katalvlaran/spdisjoint/dfs"
)

// writeTable renders one row per path and direction, then the warnings and
// a summary table.
func writeTable(w *bufio.Writer, res *analysis.Result, prec int) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pair", "Cost", "#", "Path"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for i := range res.Pairs {
		p := &res.Pairs[i]
		fwd := fmt.Sprintf("N%d -> N%d", p.Source, p.Target)
		rev := fmt.Sprintf("N%d -> N%d", p.Target, p.Source)
		if p.Disconnected() {
			t.AppendRow(table.Row{fwd, "disconnected", "", ""})
			t.AppendRow(table.Row{rev, "disconnected", "", ""})
			continue
		}
		cost := fmt.Sprintf("%.*f", prec, p.Cost)
		appendPaths(t, fwd, cost, p.Paths)
		appendPaths(t, rev, cost, p.Reversed)
		t.AppendSeparator()
	}
	w.WriteString(t.Render())
	w.WriteByte('\n')

	if len(res.Warnings) > 0 {
		wt := table.NewWriter()
		wt.SetStyle(table.StyleLight)
		wt.AppendHeader(table.Row{"Warning", "Detail"})
		for _, wr := range res.Warnings {
			wt.AppendRow(table.Row{wr.Kind.String(), wr.Message})
		}
		w.WriteByte('\n')
		w.WriteString(wt.Render())
		w.WriteByte('\n')
	}

	st := table.NewWriter()
	st.SetStyle(table.StyleLight)
	comps := 0
	if res.Components != nil {
		comps = res.Components.Count()
	}
	st.AppendRows([]table.Row{
		{"Nodes", res.Nodes},
		{"Edges", res.Edges},
		{"Components", comps},
		{"Connected pairs", fmt.Sprintf("%d/%d", res.ConnectedPairs(), len(res.Pairs))},
		{"Paths", res.PathCount()},
		{"Warnings", len(res.Warnings)},
	})
	w.WriteByte('\n')
	w.WriteString(st.Render())
	w.WriteByte('\n')

	return nil
}

// appendPaths adds one row per path; a pair with no extracted path (k = 0)
// still gets a row carrying its cost.
func appendPaths(t table.Writer, pair, cost string, paths []dfs.Path) {
	if len(paths) == 0 {
		t.AppendRow(table.Row{pair, cost, "", ""})
		return
	}
	for k, p := range paths {
		if k == 0 {
			t.AppendRow(table.Row{pair, cost, k + 1, p.String()})
			continue
		}
		t.AppendRow(table.Row{"", "", k + 1, p.String()})
	}
}
