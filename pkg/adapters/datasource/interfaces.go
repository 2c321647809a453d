package datasource

import (
	"context"
	"time"
)

// Default connection behavior applied by every adapter.
const (
	// DefaultConnectTimeout bounds how long an engine connection attempt
	// may take when the caller does not specify one.
	DefaultConnectTimeout = 15 * time.Second

	// MaxSampleLimit is the hard cap on rows returned by SampleRows.
	// This protects against unbounded sampling queries.
	MaxSampleLimit = 1000
)

// ConnectionParams is the uniform parameter set for opening a connection to
// any supported engine. Immutable once constructed; owned by the caller and
// never mutated by the scanner.
type ConnectionParams struct {
	// Engine is the adapter type: "postgres", "mysql", "sqlite",
	// "sqlserver", "mongodb" or "redis".
	Engine   string `json:"engine"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"-"`
	// Database is the database name, or the file path for sqlite.
	Database string `json:"database"`
	// SSLMode applies to relational engines ("disable", "require", ...).
	SSLMode string `json:"ssl_mode,omitempty"`
	// TLS enables transport encryption for mongodb and redis.
	TLS bool `json:"tls,omitempty"`
	// ConnectTimeout overrides DefaultConnectTimeout when positive.
	ConnectTimeout time.Duration `json:"connect_timeout,omitempty"`
}

// EffectiveConnectTimeout returns the configured connect timeout, falling
// back to the package default.
func (p ConnectionParams) EffectiveConnectTimeout() time.Duration {
	if p.ConnectTimeout > 0 {
		return p.ConnectTimeout
	}
	return DefaultConnectTimeout
}

// ConnectionTester tests database connectivity.
// Each implementation owns its connection and must be closed when done.
type ConnectionTester interface {
	// TestConnection verifies the database is reachable with valid credentials.
	// Returns nil if connection is healthy, error otherwise.
	TestConnection(ctx context.Context) error

	// Close releases the database connection.
	Close() error
}

// SchemaIntrospector enumerates tables (or collections/keyspaces) with
// row-count estimates and column metadata. Read-only; must not take
// per-table locks. Row counts come from catalog statistics where the
// engine provides them, never COUNT(*) on server engines.
type SchemaIntrospector interface {
	// DiscoverTables returns all user tables (excludes system schemas).
	DiscoverTables(ctx context.Context) ([]TableInfo, error)

	// DiscoverColumns returns columns for a specific table. Non-relational
	// engines return a column-like approximation inferred from a small
	// document/key sample.
	DiscoverColumns(ctx context.Context, schemaName, tableName string) ([]ColumnInfo, error)

	// Close releases the database connection.
	Close() error
}

// RowSampler reads up to limit rows from one table for detector evaluation.
// Each implementation owns its connection and must be closed when done.
type RowSampler interface {
	// SampleRows returns up to limit rows as column-name keyed maps.
	// The limit is capped at MaxSampleLimit; limit <= 0 uses MaxSampleLimit.
	SampleRows(ctx context.Context, schemaName, tableName string, limit int) ([]map[string]any, error)

	// Close releases the database connection.
	Close() error
}

// ClampSampleLimit applies the MaxSampleLimit bounds shared by all adapters.
func ClampSampleLimit(limit int) int {
	if limit <= 0 || limit > MaxSampleLimit {
		return MaxSampleLimit
	}
	return limit
}
