// SPDX-License-Identifier: MIT

// Package config holds the run configuration of sppairs: defaults in code,
// an optional YAML file on top, command-line flags on top of that. Loading
// and validation are separate steps so that the CLI can overlay its flags
// between them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spdisjoint/core"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatNone  = "none"
)

// Log encodings.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// MaxCrossCheckNodes bounds the O(n³) Floyd–Warshall cross check.
const MaxCrossCheckNodes = 2000

// Config is the full run configuration.
type Config struct {
	Input    Input    `yaml:"input"`
	Analysis Analysis `yaml:"analysis"`
	Report   Report   `yaml:"report"`
	Logging  Logging  `yaml:"logging"`
}

// Input controls parsing and graph construction.
type Input struct {
	Lenient         bool `yaml:"lenient"`
	SortedAdjacency bool `yaml:"sorted_adjacency"`
	AllowLoops      bool `yaml:"allow_loops"`
}

// Analysis controls the per-pair computation.
type Analysis struct {
	K          int     `yaml:"k" validate:"gte=0,lte=64"`
	Tolerance  float64 `yaml:"tolerance" validate:"gte=0"`
	Workers    int     `yaml:"workers" validate:"gte=0"`
	Audit      bool    `yaml:"audit"`
	CrossCheck bool    `yaml:"cross_check"`
}

// Report controls rendering.
type Report struct {
	Format    string `yaml:"format" validate:"oneof=text table none"`
	Precision int    `yaml:"precision" validate:"gte=0,lte=12"`
	Timing    bool   `yaml:"timing"`
}

// Logging controls the zap logger.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: Analysis{
			K:         3,
			Tolerance: core.DefaultTolerance,
		},
		Report: Report{
			Format:    FormatText,
			Precision: 2,
			Timing:    true,
		},
		Logging: Logging{
			Level:  "info",
			Format: LogConsole,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults; a path that does not exist is an error. Unknown keys
// are rejected. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err = decode(bytes.NewReader(raw), cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// decode overlays YAML from r onto cfg. An empty document leaves cfg as is.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

var validate = validator.New()

// Validate checks field ranges and enumerations. All failures are reported
// at once, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
