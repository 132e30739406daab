// SPDX-License-Identifier: MIT

// Command sppairs reads a weighted undirected graph and prints, for every
// pair of nodes, the minimum cost and up to K edge-disjoint paths that
// achieve it.
//
// Usage:
//
//	sppairs [options] <input-file>
//
// Configuration is layered: built-in defaults, then the YAML file given with
// -c, then the command-line flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/katalvlaran/spdisjoint/analysis"
	"github.com/katalvlaran/spdisjoint/config"
	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/graphio"
	"github.com/katalvlaran/spdisjoint/logging"
	"github.com/katalvlaran/spdisjoint/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig follows defaults → file → flags:
//  1. Pre-parse the command line to find the configuration file.
//  2. Load the file over the defaults.
//  3. Parse the command line again with the loaded values as defaults.
//  4. Validate the result.
func loadConfig(args []string) (*config.Config, string, error) {
	var pre options
	if err := parse(&pre, args); err != nil {
		return nil, "", err
	}

	cfg, err := config.Load(pre.ConfigFile)
	if err != nil {
		return nil, "", err
	}

	o := fromConfig(pre.ConfigFile, cfg)
	if err = parse(&o, args); err != nil {
		return nil, "", err
	}
	o.apply(cfg)

	if err = cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, o.Args.Input, nil
}

// run is main without the process exit, writing the report to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, input, err := loadConfig(args)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// 1) Parse
	policy := graphio.Strict
	if cfg.Input.Lenient {
		policy = graphio.Lenient
	}
	doc, err := graphio.ParseFile(input, graphio.WithPolicy(policy))
	if err != nil {
		return err
	}
	for _, f := range doc.FaultList() {
		log.Warn("skipped input line", zap.Error(f))
	}
	log.Debug("input parsed",
		zap.String("file", input),
		zap.Int("nodes", doc.Nodes),
		zap.Int("edges", len(doc.Edges)),
		zap.Stringer("policy", policy))

	// 2) Build
	var gopts []core.GraphOption
	if cfg.Input.SortedAdjacency {
		gopts = append(gopts, core.WithSortedAdjacency())
	}
	if cfg.Input.AllowLoops {
		gopts = append(gopts, core.WithLoops())
	}
	g, err := graphio.Build(doc, gopts...)
	if err != nil {
		return err
	}

	// 3) Analyse
	res, err := analysis.Run(ctx, g, cfg.Analysis, log)
	if err != nil {
		return err
	}

	// 4) Report
	if err = report.Write(stdout, res, report.FromConfig(cfg.Report)); err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		_, _ = fmt.Fprintf(stderr, "%d warning(s), see report\n", len(res.Warnings))
	}

	return nil
}
