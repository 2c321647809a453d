package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// SampleRows returns up to limit documents from the collection as
// field-keyed maps.
func (a *Adapter) SampleRows(ctx context.Context, _, collectionName string, limit int) ([]map[string]any, error) {
	limit = datasource.ClampSampleLimit(limit)

	findOptions := options.Find().SetLimit(int64(limit))
	cursor, err := a.db.Collection(collectionName).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", collectionName, err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sampled documents: %w", err)
	}

	rows := make([]map[string]any, len(docs))
	for i, doc := range docs {
		rows[i] = map[string]any(doc)
	}

	return rows, nil
}
