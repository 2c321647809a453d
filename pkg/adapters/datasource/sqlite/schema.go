package sqlite

import (
	"context"
	"fmt"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// DiscoverTables returns all user tables from sqlite_master. Row counts are
// exact; counting an embedded file is cheap enough that no statistics
// approximation is needed.
func (a *Adapter) DiscoverTables(ctx context.Context) ([]datasource.TableInfo, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	tables := make([]datasource.TableInfo, 0, len(names))
	for _, name := range names {
		var count int64
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdentifier(name))
		if err := a.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
			// Corrupt or virtual table; report it with zero rows rather
			// than failing the whole introspection.
			count = 0
		}
		tables = append(tables, datasource.TableInfo{TableName: name, RowCount: count})
	}

	return tables, nil
}

// DiscoverColumns returns columns for a specific table via PRAGMA table_info.
func (a *Adapter) DiscoverColumns(ctx context.Context, _, tableName string) ([]datasource.ColumnInfo, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier(tableName))
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var columns []datasource.ColumnInfo
	for rows.Next() {
		var (
			cid        int
			name       string
			dataType   string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, datasource.ColumnInfo{ColumnName: name, DataType: dataType})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}

	return columns, nil
}
