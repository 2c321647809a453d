package mongodb

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// schemaSampleSize is how many documents are read per collection to infer
// a column-like schema approximation.
const schemaSampleSize = 5

// DiscoverTables enumerates collections as tables. Row counts come from
// collection metadata (EstimatedDocumentCount), not a full count.
func (a *Adapter) DiscoverTables(ctx context.Context) ([]datasource.TableInfo, error) {
	names, err := a.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	sort.Strings(names)

	tables := make([]datasource.TableInfo, 0, len(names))
	for _, name := range names {
		count, err := a.db.Collection(name).EstimatedDocumentCount(ctx)
		if err != nil {
			// Views and time-series collections may reject the count;
			// report them with zero rows rather than failing discovery.
			count = 0
		}
		tables = append(tables, datasource.TableInfo{TableName: name, RowCount: count})
	}

	return tables, nil
}

// DiscoverColumns infers a field schema by sampling a few documents and
// collecting the union of their top-level field names with BSON type names.
func (a *Adapter) DiscoverColumns(ctx context.Context, _, collectionName string) ([]datasource.ColumnInfo, error) {
	findOptions := options.Find().SetLimit(schemaSampleSize)
	cursor, err := a.db.Collection(collectionName).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("sample collection %s: %w", collectionName, err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sampled documents: %w", err)
	}

	fieldTypes := make(map[string]string)
	for _, doc := range docs {
		for field, value := range doc {
			if _, seen := fieldTypes[field]; !seen {
				fieldTypes[field] = bsonTypeName(value)
			}
		}
	}

	fields := make([]string, 0, len(fieldTypes))
	for field := range fieldTypes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	columns := make([]datasource.ColumnInfo, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, datasource.ColumnInfo{ColumnName: field, DataType: fieldTypes[field]})
	}

	return columns, nil
}

// bsonTypeName maps decoded BSON values to coarse type labels.
func bsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int32, int64, float64:
		return "number"
	case bool:
		return "bool"
	case bson.M, bson.D:
		return "document"
	case bson.A:
		return "array"
	case bson.ObjectID:
		return "objectId"
	default:
		return fmt.Sprintf("%T", value)
	}
}
