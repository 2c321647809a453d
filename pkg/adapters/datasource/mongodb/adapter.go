package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides MongoDB connectivity. Collections are presented as
// tables and document fields as a column-like schema approximation.
type Adapter struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewAdapter creates a MongoDB adapter and verifies reachability within the
// connect timeout from params.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	cfg, err := FromParams(params)
	if err != nil {
		return nil, apperrors.NewConnectionError("mongodb", err)
	}

	clientOptions := options.Client().
		ApplyURI(buildURI(cfg)).
		SetConnectTimeout(params.EffectiveConnectTimeout())

	// In driver v2, Connect handles both creation and connection.
	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, apperrors.NewConnectionError("mongodb", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, params.EffectiveConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.NewConnectionError("mongodb", err)
	}

	return &Adapter{client: client, db: client.Database(cfg.Database)}, nil
}

// TestConnection verifies the server is reachable with valid credentials.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.client.Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.NewConnectionError("mongodb", err)
	}
	return nil
}

// Close disconnects the client.
func (a *Adapter) Close() error {
	return a.client.Disconnect(context.Background())
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
