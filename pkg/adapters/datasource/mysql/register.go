package mysql

import (
	"context"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "mysql",
			DisplayName: "MySQL",
			Description: "Connect to MySQL 5.7+, MariaDB, Aurora MySQL",
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
