package scanner

import (
	"sync"

	"github.com/google/uuid"

	"github.com/privalens/privalens-engine/pkg/models"
)

// Cache stores schema analyses keyed by connection fingerprint so repeated
// scans of the same database skip re-introspection. Implementations must be
// safe for concurrent use. The scanner takes a Cache via constructor
// injection; when the caller supplies none, a no-op is used.
type Cache interface {
	GetSchemaAnalysis(key string) (*models.SchemaAnalysis, bool)
	SetSchemaAnalysis(key string, analysis *models.SchemaAnalysis)
}

// ActivityTracker receives scan lifecycle events. Implementations must be
// safe for concurrent use and must not block; slow sinks should buffer.
type ActivityTracker interface {
	ScanStarted(scanID uuid.UUID, engine string)
	TableScanned(scanID uuid.UUID, table string, findings int)
	ScanCompleted(scanID uuid.UUID, result *models.ScanResult)
}

type nopCache struct{}

func (nopCache) GetSchemaAnalysis(string) (*models.SchemaAnalysis, bool) { return nil, false }
func (nopCache) SetSchemaAnalysis(string, *models.SchemaAnalysis)       {}

// NopCache returns a cache that stores nothing.
func NopCache() Cache {
	return nopCache{}
}

type nopTracker struct{}

func (nopTracker) ScanStarted(uuid.UUID, string)               {}
func (nopTracker) TableScanned(uuid.UUID, string, int)         {}
func (nopTracker) ScanCompleted(uuid.UUID, *models.ScanResult) {}

// NopActivityTracker returns a tracker that records nothing.
func NopActivityTracker() ActivityTracker {
	return nopTracker{}
}

// MemoryCache is a minimal in-process Cache for embedders that want schema
// reuse without bringing their own store.
type MemoryCache struct {
	mu       sync.RWMutex
	analyses map[string]*models.SchemaAnalysis
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{analyses: make(map[string]*models.SchemaAnalysis)}
}

// GetSchemaAnalysis returns the cached analysis for a fingerprint.
func (c *MemoryCache) GetSchemaAnalysis(key string) (*models.SchemaAnalysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	analysis, ok := c.analyses[key]
	return analysis, ok
}

// SetSchemaAnalysis stores an analysis under a fingerprint.
func (c *MemoryCache) SetSchemaAnalysis(key string, analysis *models.SchemaAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyses[key] = analysis
}

// Compile-time capability checks.
var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = nopCache{}
)
