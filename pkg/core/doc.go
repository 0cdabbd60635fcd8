// Package core defines the shared language of the snowshift system.
//
// This package contains:
//   - The materialized result set (Table)
//   - Connection configuration (ConnectionConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
