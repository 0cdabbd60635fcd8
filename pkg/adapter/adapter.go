// Package adapter provides database adapter interfaces and shared
// database/sql plumbing for snowshift.
//
// This package contains the contract all database adapters implement.
// Concrete adapter implementations are in pkg/adapters/ subdirectories and
// register themselves with the registry in their init() functions.
package adapter

import (
	"context"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// Adapter is a connected database the comparison engine can dispatch
// queries to. Its Execute method satisfies timetravel.Executor, which is
// the only surface the core consumes.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg core.ConnectionConfig) error

	// Close closes the connection and releases resources.
	Close() error

	// Execute runs a query and materializes the full result. params are
	// named parameters bound as sql.Named args; support depends on the
	// underlying driver (Snowflake supports them, DuckDB and Postgres
	// drivers expect positional placeholders).
	Execute(ctx context.Context, query string, params map[string]any) (*core.Table, error)
}
