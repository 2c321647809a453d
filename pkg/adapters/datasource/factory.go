package datasource

import (
	"context"
	"fmt"

	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// AdapterFactory creates adapters from the registry.
type AdapterFactory interface {
	// NewConnectionTester creates a connection tester for the given engine.
	NewConnectionTester(ctx context.Context, params ConnectionParams) (ConnectionTester, error)

	// NewSchemaIntrospector creates a schema introspector for the given engine.
	NewSchemaIntrospector(ctx context.Context, params ConnectionParams) (SchemaIntrospector, error)

	// NewRowSampler creates a row sampler for the given engine.
	NewRowSampler(ctx context.Context, params ConnectionParams) (RowSampler, error)

	// ListTypes returns info for all registered adapter types.
	ListTypes() []AdapterInfo
}

type registryFactory struct{}

// NewAdapterFactory returns a factory that uses the global registry.
func NewAdapterFactory() AdapterFactory {
	return &registryFactory{}
}

func (f *registryFactory) NewConnectionTester(ctx context.Context, params ConnectionParams) (ConnectionTester, error) {
	factory := GetTesterFactory(params.Engine)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s (not compiled in)", apperrors.ErrUnsupportedEngine, params.Engine)
	}
	return factory(ctx, params)
}

func (f *registryFactory) NewSchemaIntrospector(ctx context.Context, params ConnectionParams) (SchemaIntrospector, error) {
	factory := GetIntrospectorFactory(params.Engine)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s (not compiled in)", apperrors.ErrUnsupportedEngine, params.Engine)
	}
	return factory(ctx, params)
}

func (f *registryFactory) NewRowSampler(ctx context.Context, params ConnectionParams) (RowSampler, error) {
	factory := GetSamplerFactory(params.Engine)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s (not compiled in)", apperrors.ErrUnsupportedEngine, params.Engine)
	}
	return factory(ctx, params)
}

func (f *registryFactory) ListTypes() []AdapterInfo {
	return RegisteredAdapters()
}

// Ensure registryFactory implements AdapterFactory at compile time.
var _ AdapterFactory = (*registryFactory)(nil)
