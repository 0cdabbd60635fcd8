// Package config provides configuration management for the snowshift CLI.
//
// Configuration is resolved once at the CLI boundary: the loaded Config
// carries an explicit ConnectionConfig that gets turned into an adapter by
// the registry. Nothing below the CLI resolves connections implicitly.
package config

import (
	"github.com/snowshift-labs/snowshift/pkg/core"
)

// ConnectionConfig is an alias for the shared connection configuration.
// This allows CLI code to use config.ConnectionConfig without importing pkg/core.
type ConnectionConfig = core.ConnectionConfig

// Config holds all CLI configuration options.
type Config struct {
	Environment  string               `koanf:"environment"`
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	Connection   *ConnectionConfig    `koanf:"connection"`
	Environments map[string]EnvConfig `koanf:"environments"`
}

// EnvConfig holds environment-specific configuration overrides.
type EnvConfig struct {
	Connection *ConnectionConfig `koanf:"connection"`
}

// Default configuration values.
const (
	DefaultEnv    = "dev"
	DefaultOutput = "table"
)

// MergeConnectionConfig overlays override onto base, field by field.
// Non-zero override fields win; Options maps are merged key-wise.
func MergeConnectionConfig(base, override *ConnectionConfig) *ConnectionConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	if override.Type != "" {
		merged.Type = override.Type
	}
	if override.Path != "" {
		merged.Path = override.Path
	}
	if override.Host != "" {
		merged.Host = override.Host
	}
	if override.Port != 0 {
		merged.Port = override.Port
	}
	if override.User != "" {
		merged.User = override.User
	}
	if override.Password != "" {
		merged.Password = override.Password
	}
	if override.Database != "" {
		merged.Database = override.Database
	}
	if override.Schema != "" {
		merged.Schema = override.Schema
	}
	if override.Account != "" {
		merged.Account = override.Account
	}
	if override.Warehouse != "" {
		merged.Warehouse = override.Warehouse
	}
	if override.Role != "" {
		merged.Role = override.Role
	}
	if len(override.Options) > 0 {
		if merged.Options == nil {
			merged.Options = make(map[string]string, len(override.Options))
		} else {
			opts := make(map[string]string, len(merged.Options)+len(override.Options))
			for k, v := range merged.Options {
				opts[k] = v
			}
			merged.Options = opts
		}
		for k, v := range override.Options {
			merged.Options[k] = v
		}
	}
	return &merged
}
