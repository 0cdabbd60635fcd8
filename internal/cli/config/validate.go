package config

import (
	"fmt"
)

// Validate checks that the configuration can produce a usable connection.
// Called by commands that actually dispatch queries; help and version
// commands work without a connection.
func (c *Config) Validate() error {
	if c.Connection == nil || c.Connection.Type == "" {
		return fmt.Errorf("no connection configured\nHint: Set connection.type in snowshift.yaml or SNOWSHIFT_CONNECTION_TYPE")
	}
	return nil
}
