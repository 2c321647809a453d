package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides MySQL connectivity via database/sql. One Adapter owns one
// handle and implements connection testing, schema introspection and row
// sampling.
type Adapter struct {
	config *Config
	db     *sql.DB
}

// NewAdapter creates a MySQL adapter and verifies reachability within the
// connect timeout from params.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	cfg, err := FromParams(params)
	if err != nil {
		return nil, apperrors.NewConnectionError("mysql", err)
	}

	db, err := sql.Open("mysql", buildDSN(cfg, params.EffectiveConnectTimeout()))
	if err != nil {
		return nil, apperrors.NewConnectionError("mysql", err)
	}
	db.SetMaxOpenConns(2)

	pingCtx, cancel := context.WithTimeout(ctx, params.EffectiveConnectTimeout())
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, apperrors.NewConnectionError("mysql", err)
	}

	return &Adapter{config: cfg, db: db}, nil
}

// TestConnection verifies the database is reachable with valid credentials.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return apperrors.NewConnectionError("mysql", fmt.Errorf("ping failed: %w", err))
	}

	var currentDB string
	if err := a.db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&currentDB); err != nil {
		return apperrors.NewConnectionError("mysql", fmt.Errorf("test query failed: %w", err))
	}
	if !strings.EqualFold(currentDB, a.config.Database) {
		return apperrors.NewConnectionError("mysql",
			fmt.Errorf("connected to wrong database: expected %q but connected to %q", a.config.Database, currentDB))
	}

	return nil
}

// Close releases the database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// quoteIdentifier backtick-quotes a MySQL identifier.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
