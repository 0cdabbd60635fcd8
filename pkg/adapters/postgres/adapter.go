// Package postgres provides a PostgreSQL database adapter for snowshift.
//
// Postgres has no Time Travel feature; the adapter is useful for running
// and rendering plain (unshifted) queries against an existing warehouse
// replica with the same tooling.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
	"github.com/snowshift-labs/snowshift/pkg/core"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// Adapter implements the adapter.Adapter interface for PostgreSQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new PostgreSQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Connect establishes a connection to PostgreSQL.
func (a *Adapter) Connect(ctx context.Context, cfg core.ConnectionConfig) error {
	dsn := buildDSN(cfg)

	a.Logger.Debug("connecting to postgres",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database))

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// buildDSN constructs a PostgreSQL connection string in key=value format.
func buildDSN(cfg core.ConnectionConfig) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if cfg.Options != nil {
		if mode, ok := cfg.Options["sslmode"]; ok {
			sslmode = mode
		}
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		host, port, cfg.Database, sslmode)

	if cfg.User != "" {
		dsn += fmt.Sprintf(" user=%s", cfg.User)
	}
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}

	return dsn
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
