package sqlserver

import (
	"context"
	"fmt"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// SampleRows returns up to limit rows from the table as column-keyed maps.
// SQL Server has no LIMIT clause; TOP (n) with a sanitized literal is used
// instead (TOP does not accept a parameter placeholder inside a subquery).
func (a *Adapter) SampleRows(ctx context.Context, schemaName, tableName string, limit int) ([]map[string]any, error) {
	limit = datasource.ClampSampleLimit(limit)
	tableRef := qualifiedTableName(schemaName, tableName)

	query := fmt.Sprintf("SELECT TOP (%d) * FROM %s", limit, tableRef)
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", tableRef, err)
	}
	defer rows.Close()

	return datasource.ScanRowsToMaps(rows)
}
