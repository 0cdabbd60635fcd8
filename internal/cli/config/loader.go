package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
)

// findConfigFile finds the config file to use.
// Priority: explicit path > ./snowshift.yaml > ./snowshift.yml > ~/.snowshift/snowshift.yaml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{"snowshift.yaml", "snowshift.yml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(homeDir, ".snowshift", "snowshift.yaml"),
			filepath.Join(homeDir, ".snowshift", "snowshift.yml"),
		)
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// The envOverride parameter selects which environment's connection overlay to
// apply (empty means the configured environment).
func LoadConfig(cfgFile, envOverride string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"environment": DefaultEnv,
		"verbose":     false,
		"output":      DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (SNOWSHIFT_ prefix)
	// Transform: SNOWSHIFT_CONNECTION_ACCOUNT -> connection.account
	// (all config key segments are single words, so "_" maps to ".")
	if err := k.Load(env.Provider("SNOWSHIFT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SNOWSHIFT_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}

			// EXPLICIT MAPPING: the CLI uses --env for brevity, but the
			// config struct uses environment for clarity
			if f.Name == "env" {
				return "environment", posflag.FlagVal(flags, f)
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Apply environment-specific overlays
	envForConnection := cfg.Environment
	if envOverride != "" {
		envForConnection = envOverride
		cfg.Environment = envOverride
	}
	if envForConnection != "" && cfg.Environments != nil {
		if envCfg, ok := cfg.Environments[envForConnection]; ok && envCfg.Connection != nil {
			cfg.Connection = MergeConnectionConfig(cfg.Connection, envCfg.Connection)
		}
	}

	if cfg.Connection == nil {
		cfg.Connection = &ConnectionConfig{}
	}

	// 7. Expand ${VAR} references so secrets can live outside the file
	expandConnectionEnvVars(cfg.Connection)

	return &cfg, nil
}

// expandConnectionEnvVars expands ${VAR} references in connection fields.
// Lets config files reference secrets like password: ${SNOWFLAKE_PASSWORD}.
func expandConnectionEnvVars(c *ConnectionConfig) {
	c.Account = os.ExpandEnv(c.Account)
	c.Host = os.ExpandEnv(c.Host)
	c.User = os.ExpandEnv(c.User)
	c.Password = os.ExpandEnv(c.Password)
	c.Database = os.ExpandEnv(c.Database)
	c.Schema = os.ExpandEnv(c.Schema)
	c.Warehouse = os.ExpandEnv(c.Warehouse)
	c.Role = os.ExpandEnv(c.Role)
	c.Path = os.ExpandEnv(c.Path)
	for k, v := range c.Options {
		c.Options[k] = os.ExpandEnv(v)
	}
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}
