package redis

import (
	"context"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "redis",
			DisplayName: "Redis",
			Description: "Scan Redis 6+ keyspaces (strings, hashes, lists, sets)",
		},
		TesterFactory: func(ctx context.Context, params datasource.ConnectionParams) (datasource.ConnectionTester, error) {
			return NewAdapter(ctx, params)
		},
		IntrospectorFactory: func(ctx context.Context, params datasource.ConnectionParams) (datasource.SchemaIntrospector, error) {
			return NewAdapter(ctx, params)
		},
		SamplerFactory: func(ctx context.Context, params datasource.ConnectionParams) (datasource.RowSampler, error) {
			return NewAdapter(ctx, params)
		},
	})
}
