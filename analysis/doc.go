// SPDX-License-Identifier: MIT

// Package analysis runs the full all-pairs pipeline on a built core.Graph:
// connected components, the Dijkstra distance table, per-pair disjoint path
// extraction, and the optional audits. It is the only library package that
// logs; the report package renders its Result.
//
// Pairs are processed one source row per task on an errgroup bounded by
// config.Analysis.Workers. Every task owns its banned sets and writes a
// disjoint range of Result.Pairs, so the graph is the only shared state and
// it is read-only here.
//
// Warnings are non-fatal and ordered: negative weights first (edge insertion
// order), then cross-check findings, then greedy shortfalls (pair order).
package analysis
