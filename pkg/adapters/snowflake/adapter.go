// Package snowflake provides a Snowflake database adapter for snowshift.
//
// Snowflake is the primary target: it is the engine whose Time Travel
// syntax the query rewriter emits. This adapter supports named query
// parameters through gosnowflake's sql.Named binding.
package snowflake

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
	"github.com/snowshift-labs/snowshift/pkg/core"

	sf "github.com/snowflakedb/gosnowflake"
)

// Adapter implements the adapter.Adapter interface for Snowflake.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new Snowflake adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Connect establishes a connection to Snowflake.
func (a *Adapter) Connect(ctx context.Context, cfg core.ConnectionConfig) error {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return fmt.Errorf("failed to build snowflake DSN: %w", err)
	}

	a.Logger.Debug("connecting to snowflake",
		slog.String("account", cfg.Account),
		slog.String("database", cfg.Database),
		slog.String("warehouse", cfg.Warehouse))

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return fmt.Errorf("failed to open snowflake connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping snowflake: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// buildDSN constructs a Snowflake connection string via the driver's own
// DSN builder, which handles encoding and validation.
func buildDSN(cfg core.ConnectionConfig) (string, error) {
	sfCfg := &sf.Config{
		Account:   cfg.Account,
		User:      cfg.User,
		Password:  cfg.Password,
		Database:  cfg.Database,
		Schema:    cfg.Schema,
		Warehouse: cfg.Warehouse,
		Role:      cfg.Role,
		Host:      cfg.Host,
		Port:      cfg.Port,
	}

	if len(cfg.Options) > 0 {
		sfCfg.Params = make(map[string]*string, len(cfg.Options))
		for k, v := range cfg.Options {
			v := v
			sfCfg.Params[k] = &v
		}
	}

	return sf.DSN(sfCfg)
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
