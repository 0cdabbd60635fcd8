// Package duckdb provides a DuckDB database adapter for snowshift.
//
// DuckDB has no Time Travel feature; this adapter exists for local
// development and testing of queries and rendering against file-based or
// in-memory databases. Time-shifted queries against DuckDB fail at the
// engine with a syntax error, which propagates like any other execution
// failure.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
	"github.com/snowshift-labs/snowshift/pkg/core"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Connect establishes a connection to DuckDB.
// An empty path opens an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg core.ConnectionConfig) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
