package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides PostgreSQL connectivity. One Adapter owns one pool and
// implements connection testing, schema introspection and row sampling.
type Adapter struct {
	config *Config
	pool   *pgxpool.Pool
}

// NewAdapter creates a PostgreSQL adapter and opens its pool. The connect
// timeout from params is applied to every dial attempt.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	cfg, err := FromParams(params)
	if err != nil {
		return nil, apperrors.NewConnectionError("postgres", err)
	}

	poolCfg, err := pgxpool.ParseConfig(buildConnectionString(cfg))
	if err != nil {
		return nil, apperrors.NewConnectionError("postgres", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = params.EffectiveConnectTimeout()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, apperrors.NewConnectionError("postgres", err)
	}

	return &Adapter{config: cfg, pool: pool}, nil
}

// TestConnection verifies the database is reachable with valid credentials.
// It checks:
// 1. Server connectivity (ping)
// 2. Database access (simple query)
// 3. Correct database name (to prevent connecting to wrong/default database)
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.pool.Ping(ctx); err != nil {
		return apperrors.NewConnectionError("postgres", fmt.Errorf("ping failed: %w", err))
	}

	var result int
	if err := a.pool.QueryRow(ctx, "SELECT 1").Scan(&result); err != nil {
		return apperrors.NewConnectionError("postgres", fmt.Errorf("test query failed: %w", err))
	}

	var currentDB string
	if err := a.pool.QueryRow(ctx, "SELECT current_database()").Scan(&currentDB); err != nil {
		return apperrors.NewConnectionError("postgres", fmt.Errorf("failed to get current database name: %w", err))
	}
	if !strings.EqualFold(currentDB, a.config.Database) {
		return apperrors.NewConnectionError("postgres",
			fmt.Errorf("connected to wrong database: expected %q but connected to %q", a.config.Database, currentDB))
	}

	return nil
}

// Close releases the pool.
func (a *Adapter) Close() error {
	if a.pool != nil {
		a.pool.Close()
	}
	return nil
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
