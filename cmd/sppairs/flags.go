// SPDX-License-Identifier: MIT

package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/spdisjoint/config"
)

// options are the command-line flags. Their defaults come from the loaded
// configuration, so a flag given on the command line always wins.
type options struct {
	ConfigFile string `short:"c" long:"config" description:"YAML configuration file"`

	K          int     `short:"k" long:"paths" description:"edge-disjoint shortest paths per pair (0-64)"`
	Tolerance  float64 `long:"tolerance" description:"absolute slack when matching path costs"`
	Workers    int     `short:"j" long:"workers" description:"concurrent sources, 0 = GOMAXPROCS"`
	Audit      bool    `long:"audit" description:"count the exact maximum of disjoint paths and flag greedy shortfalls"`
	CrossCheck bool    `long:"cross-check" description:"verify distances against Floyd-Warshall (n <= 2000)"`

	Lenient bool `long:"lenient" description:"skip malformed edge lines instead of failing"`
	Sorted  bool `long:"sorted" description:"order adjacency by neighbor id instead of input order"`
	Loops   bool `long:"loops" description:"accept self-loop edges"`

	Format    string `short:"f" long:"format" description:"report format" choice:"text" choice:"table" choice:"none"`
	Precision int    `long:"precision" description:"digits after the decimal point"`
	NoTiming  bool   `long:"no-timing" description:"omit the total time line"`

	LogLevel  string `long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFormat string `long:"log-format" description:"log encoding" choice:"console" choice:"json"`

	Args struct {
		Input string `positional-arg-name:"input-file" required:"yes"`
	} `positional-args:"yes"`
}

// parse runs go-flags over args into o.
func parse(o *options, args []string) error {
	p := flags.NewParser(o, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "sppairs"
	_, err := p.ParseArgs(args)

	return err
}

// fromConfig seeds the flags with the configuration values.
func fromConfig(cfgFile string, c *config.Config) options {
	return options{
		ConfigFile: cfgFile,
		K:          c.Analysis.K,
		Tolerance:  c.Analysis.Tolerance,
		Workers:    c.Analysis.Workers,
		Audit:      c.Analysis.Audit,
		CrossCheck: c.Analysis.CrossCheck,
		Lenient:    c.Input.Lenient,
		Sorted:     c.Input.SortedAdjacency,
		Loops:      c.Input.AllowLoops,
		Format:     c.Report.Format,
		Precision:  c.Report.Precision,
		NoTiming:   !c.Report.Timing,
		LogLevel:   c.Logging.Level,
		LogFormat:  c.Logging.Format,
	}
}

// apply writes the parsed flags back into c.
func (o *options) apply(c *config.Config) {
	c.Analysis.K = o.K
	c.Analysis.Tolerance = o.Tolerance
	c.Analysis.Workers = o.Workers
	c.Analysis.Audit = o.Audit
	c.Analysis.CrossCheck = o.CrossCheck
	c.Input.Lenient = o.Lenient
	c.Input.SortedAdjacency = o.Sorted
	c.Input.AllowLoops = o.Loops
	c.Report.Format = o.Format
	c.Report.Precision = o.Precision
	c.Report.Timing = !o.NoTiming
	c.Logging.Level = o.LogLevel
	c.Logging.Format = o.LogFormat
}
