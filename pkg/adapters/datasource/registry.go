package datasource

import (
	"context"
	"sync"
)

// AdapterInfo describes a registered adapter.
type AdapterInfo struct {
	Type        string `json:"type"`         // "postgres", "mysql", "mongodb"
	DisplayName string `json:"display_name"` // "PostgreSQL", "MySQL"
	Description string `json:"description"`
}

// AdapterRegistration contains info + factories for creating adapters.
type AdapterRegistration struct {
	Info                AdapterInfo
	TesterFactory       func(ctx context.Context, params ConnectionParams) (ConnectionTester, error)
	IntrospectorFactory func(ctx context.Context, params ConnectionParams) (SchemaIntrospector, error)
	SamplerFactory      func(ctx context.Context, params ConnectionParams) (RowSampler, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]AdapterRegistration)
)

// Register is called by each adapter's init() function.
// Thread-safe for concurrent init() calls.
func Register(reg AdapterRegistration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reg.Info.Type] = reg
}

// RegisteredAdapters returns info for all registered adapters.
func RegisteredAdapters() []AdapterInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]AdapterInfo, 0, len(registry))
	for _, reg := range registry {
		result = append(result, reg.Info)
	}
	return result
}

// GetTesterFactory returns the connection tester factory for an engine type.
// Returns nil if the type is not registered.
func GetTesterFactory(engine string) func(ctx context.Context, params ConnectionParams) (ConnectionTester, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if reg, ok := registry[engine]; ok {
		return reg.TesterFactory
	}
	return nil
}

// GetIntrospectorFactory returns the schema introspector factory for an
// engine type. Returns nil if the type is not registered.
func GetIntrospectorFactory(engine string) func(ctx context.Context, params ConnectionParams) (SchemaIntrospector, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if reg, ok := registry[engine]; ok {
		return reg.IntrospectorFactory
	}
	return nil
}

// GetSamplerFactory returns the row sampler factory for an engine type.
// Returns nil if the type is not registered.
func GetSamplerFactory(engine string) func(ctx context.Context, params ConnectionParams) (RowSampler, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if reg, ok := registry[engine]; ok {
		return reg.SamplerFactory
	}
	return nil
}

// IsRegistered checks if an adapter type is available.
func IsRegistered(engine string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[engine]
	return ok
}
