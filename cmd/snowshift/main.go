// Command snowshift compares current query results against historical
// table state using Snowflake Time Travel.
package main

import (
	"os"

	"github.com/snowshift-labs/snowshift/internal/cli"

	// Register database adapters.
	_ "github.com/snowshift-labs/snowshift/pkg/adapters/duckdb"
	_ "github.com/snowshift-labs/snowshift/pkg/adapters/postgres"
	_ "github.com/snowshift-labs/snowshift/pkg/adapters/snowflake"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
