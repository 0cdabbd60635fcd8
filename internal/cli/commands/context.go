// Package commands implements the snowshift subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/snowshift-labs/snowshift/internal/cli/config"
)

// ConfigKey is the context key under which the root command stores the
// loaded configuration.
type ConfigKey struct{}

// LoggerKey is the context key under which the root command stores the
// CLI logger.
type LoggerKey struct{}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	// Default config if none in context (e.g. command run in isolation)
	return &config.Config{
		Environment:  config.DefaultEnv,
		OutputFormat: config.DefaultOutput,
		Connection:   &config.ConnectionConfig{},
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
