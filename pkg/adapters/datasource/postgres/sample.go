package postgres

import (
	"context"
	"fmt"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// SampleRows returns up to limit rows from the table as column-keyed maps.
// The limit is always bounded by datasource.MaxSampleLimit.
func (a *Adapter) SampleRows(ctx context.Context, schemaName, tableName string, limit int) ([]map[string]any, error) {
	limit = datasource.ClampSampleLimit(limit)
	tableRef := qualifiedTableName(schemaName, tableName)

	query := fmt.Sprintf(`SELECT * FROM %s LIMIT $1`, tableRef)

	rows, err := a.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", tableRef, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var result []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read sampled row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sampled rows: %w", err)
	}

	return result, nil
}
