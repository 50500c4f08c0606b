// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output styles understood by New.
const (
	StyleTerminal = "terminal"
	StyleJSON     = "json"
	StyleNoop     = "noop"
)

// New builds a logger. style selects the output encoding and level the
// minimum severity; empty values mean terminal output at info level.
// Stacktraces are held back until error level so scan warnings about
// unreadable pages stay one line each.
func New(style, level string) (*zap.Logger, error) {
	if style == "" {
		style = StyleTerminal
	}
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		lvl = parsed
	}

	switch style {
	case StyleNoop:
		return zap.NewNop(), nil
	case StyleJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	case StyleTerminal:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	default:
		return nil, fmt.Errorf("unknown log style %q: must be terminal, json, or noop", style)
	}
}
