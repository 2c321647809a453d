package sqlserver

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides SQL Server connectivity via database/sql. One Adapter
// owns one handle and implements connection testing, schema introspection
// and row sampling.
type Adapter struct {
	config *Config
	db     *sql.DB
}

// NewAdapter creates a SQL Server adapter and verifies reachability within
// the connect timeout from params.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	cfg, err := FromParams(params)
	if err != nil {
		return nil, apperrors.NewConnectionError("sqlserver", err)
	}

	db, err := sql.Open("sqlserver", buildConnectionString(cfg, params.EffectiveConnectTimeout()))
	if err != nil {
		return nil, apperrors.NewConnectionError("sqlserver", err)
	}
	db.SetMaxOpenConns(2)

	pingCtx, cancel := context.WithTimeout(ctx, params.EffectiveConnectTimeout())
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, apperrors.NewConnectionError("sqlserver", err)
	}

	return &Adapter{config: cfg, db: db}, nil
}

// TestConnection verifies the database is reachable with valid credentials
// and that we landed in the intended database rather than a default one.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return apperrors.NewConnectionError("sqlserver", fmt.Errorf("ping failed: %w", err))
	}

	var currentDB string
	if err := a.db.QueryRowContext(ctx, "SELECT DB_NAME()").Scan(&currentDB); err != nil {
		return apperrors.NewConnectionError("sqlserver", fmt.Errorf("test query failed: %w", err))
	}
	if !strings.EqualFold(currentDB, a.config.Database) {
		return apperrors.NewConnectionError("sqlserver",
			fmt.Errorf("connected to wrong database: expected %q but connected to %q", a.config.Database, currentDB))
	}

	return nil
}

// Close releases the database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// quoteIdentifier bracket-quotes a SQL Server identifier.
func quoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// qualifiedTableName returns [schema].[table], or [table] when no schema.
func qualifiedTableName(schemaName, tableName string) string {
	if schemaName == "" {
		return quoteIdentifier(tableName)
	}
	return quoteIdentifier(schemaName) + "." + quoteIdentifier(tableName)
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
