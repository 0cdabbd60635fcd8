package core

// ConnectionConfig holds database connection configuration.
type ConnectionConfig struct {
	Type string `koanf:"type"` // snowflake, duckdb, postgres

	// File-based databases (DuckDB)
	Path string `koanf:"path"` // file path, or empty for in-memory

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Common
	Database string `koanf:"database"`
	Schema   string `koanf:"schema"`

	// Snowflake-specific
	Account   string `koanf:"account"`
	Warehouse string `koanf:"warehouse"`
	Role      string `koanf:"role"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}
