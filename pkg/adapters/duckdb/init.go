// Package duckdb provides a DuckDB database adapter for snowshift.
//
// This file registers the DuckDB adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/snowshift-labs/snowshift/pkg/adapters/duckdb"
package duckdb

import (
	"log/slog"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
)

func init() {
	adapter.Register("duckdb", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
