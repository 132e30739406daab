// SPDX-License-Identifier: MIT

// Command spgen writes a generated graph in the sppairs input format.
//
// Usage:
//
//	spgen [options] <topology>
//
// Topologies: path, cycle, star, complete, grid, theta, random.
//
//	spgen -n 50 -p 0.1 --seed 7 --int-weights --wmin 1 --wmax 3 random > g.txt
//	spgen --rows 4 --cols 6 grid
//	spgen -k 3 --length 4 theta
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/spdisjoint/builder"
	"github.com/katalvlaran/spdisjoint/graphio"
)

type options struct {
	N      int     `short:"n" long:"nodes" default:"10" description:"vertex count (path, cycle, star, complete, random)"`
	Rows   int     `long:"rows" default:"3" description:"grid rows"`
	Cols   int     `long:"cols" default:"3" description:"grid columns"`
	K      int     `short:"k" long:"routes" default:"2" description:"theta routes"`
	Length int     `long:"length" default:"2" description:"theta route length in edges"`
	P      float64 `short:"p" long:"prob" default:"0.2" description:"random edge probability"`

	Seed       int64   `long:"seed" default:"1" description:"RNG seed"`
	WMin       float64 `long:"wmin" default:"1" description:"lowest weight"`
	WMax       float64 `long:"wmax" default:"1" description:"highest weight"`
	IntWeights bool    `long:"int-weights" description:"draw integer weights in [wmin, wmax]"`

	Output string `short:"o" long:"output" description:"output file (default stdout)"`

	Args struct {
		Topology string `positional-arg-name:"topology" required:"yes" choice:"path" choice:"cycle" choice:"star" choice:"complete" choice:"grid" choice:"theta" choice:"random"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var o options
	p := flags.NewParser(&o, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "spgen"
	if _, err := p.ParseArgs(args); err != nil {
		return err
	}

	wfn, err := o.weightFn()
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(o.Seed), builder.WithWeightFn(wfn)},
		o.constructor())
	if err != nil {
		return err
	}

	if o.Output != "" {
		return graphio.WriteFile(o.Output, g)
	}

	return graphio.Write(stdout, g)
}

func (o *options) weightFn() (builder.WeightFn, error) {
	if o.WMax < o.WMin {
		return nil, fmt.Errorf("spgen: --wmax %g < --wmin %g", o.WMax, o.WMin)
	}
	if o.IntWeights {
		return builder.IntUniformWeightFn(int(o.WMin), int(o.WMax)), nil
	}

	return builder.UniformWeightFn(o.WMin, o.WMax), nil
}

func (o *options) constructor() builder.Constructor {
	switch o.Args.Topology {
	case "path":
		return builder.Path(o.N)
	case "cycle":
		return builder.Cycle(o.N)
	case "star":
		return builder.Star(o.N)
	case "complete":
		return builder.Complete(o.N)
	case "grid":
		return builder.Grid(o.Rows, o.Cols)
	case "theta":
		return builder.Theta(o.K, o.Length)
	default:
		return builder.RandomSparse(o.N, o.P)
	}
}
