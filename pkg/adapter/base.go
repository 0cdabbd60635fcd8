package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close and Execute implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    core.ConnectionConfig
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Execute runs a query and drains the result into a Table.
func (b *BaseSQLAdapter) Execute(ctx context.Context, query string, params map[string]any) (*core.Table, error) {
	if b.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	if b.Logger != nil {
		b.Logger.Debug("executing query", slog.Int("params", len(params)))
	}

	rows, err := b.DB.QueryContext(ctx, query, BindNamed(params)...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return core.ReadTable(rows)
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// BindNamed converts a parameter map into driver arguments. Names are
// sorted so the argument order is stable; binding is by name, so order
// carries no meaning beyond reproducibility.
func BindNamed(params map[string]any) []any {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = sql.Named(name, params[name])
	}
	return args
}
