// Package snowflake provides a Snowflake database adapter for snowshift.
//
// This file registers the Snowflake adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/snowshift-labs/snowshift/pkg/adapters/snowflake"
package snowflake

import (
	"log/slog"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
)

func init() {
	adapter.Register("snowflake", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
