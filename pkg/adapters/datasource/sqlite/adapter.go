package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides SQLite connectivity for embedded database files.
// The file is opened read-only so a scan can never mutate the target.
type Adapter struct {
	path string
	db   *sql.DB
}

// NewAdapter opens the SQLite file named by params.Database.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	path := params.Database
	if path == "" {
		return nil, apperrors.NewConnectionError("sqlite", fmt.Errorf("database file path is required"))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewConnectionError("sqlite", fmt.Errorf("database file: %w", err))
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, apperrors.NewConnectionError("sqlite", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, params.EffectiveConnectTimeout())
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, apperrors.NewConnectionError("sqlite", err)
	}

	return &Adapter{path: path, db: db}, nil
}

// TestConnection verifies the file is a readable SQLite database.
func (a *Adapter) TestConnection(ctx context.Context) error {
	var result int
	if err := a.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return apperrors.NewConnectionError("sqlite", fmt.Errorf("test query failed: %w", err))
	}
	return nil
}

// Close releases the file handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// quoteIdentifier double-quotes a SQLite identifier.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
