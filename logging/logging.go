// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the sppairs command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/spdisjoint/config"
)

// New returns a logger writing to stderr at cfg.Level. The json format uses
// zap's production encoder; console uses the development encoder without
// stack traces below error.
func New(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var zc zap.Config
	switch cfg.Format {
	case config.LogJSON:
		zc = zap.NewProductionConfig()
	case config.LogConsole, "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil

	return zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}
