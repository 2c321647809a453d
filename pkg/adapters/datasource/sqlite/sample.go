package sqlite

import (
	"context"
	"fmt"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// SampleRows returns up to limit rows from the table as column-keyed maps.
func (a *Adapter) SampleRows(ctx context.Context, _, tableName string, limit int) ([]map[string]any, error) {
	limit = datasource.ClampSampleLimit(limit)

	query := fmt.Sprintf("SELECT * FROM %s LIMIT ?", quoteIdentifier(tableName))
	rows, err := a.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", tableName, err)
	}
	defer rows.Close()

	return datasource.ScanRowsToMaps(rows)
}
