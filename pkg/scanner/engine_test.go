package scanner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/detectors"
	"github.com/privalens/privalens-engine/pkg/models"
)

func descriptors(names ...string) []models.TableDescriptor {
	tables := make([]models.TableDescriptor, len(names))
	for i, name := range names {
		tables[i] = models.TableDescriptor{Name: name}
	}
	return tables
}

func strategyFor(tables int, workers int) models.ScanStrategy {
	return models.ScanStrategy{
		Kind:         models.StrategyComprehensive,
		TargetTables: tables,
		SampleSize:   100,
		Workers:      workers,
		MaxScanTime:  DefaultMaxScanTime,
	}
}

func TestEngineScanFindsPII(t *testing.T) {
	factory := newFakeFactory(map[string][]map[string]any{
		"users": {
			{"id": 1, "bsn": "123456782", "note": "nothing here"},
			{"id": 2, "bsn": nil, "note": "plain"},
		},
	})
	engine := NewEngine(factory, detectors.All(), time.Second, nil)

	findings, stats := engine.Scan(context.Background(), descriptors("users"), datasource.ConnectionParams{}, strategyFor(1, 2), nil)

	require.Len(t, findings, 1)
	assert.Equal(t, "users", findings[0].TableName)
	assert.Equal(t, "bsn", findings[0].ColumnName)
	assert.Equal(t, models.SeverityCritical, findings[0].Severity)
	assert.Equal(t, 1, stats.TablesScanned)
	assert.Equal(t, 0, stats.TablesSkipped)
	assert.Equal(t, int64(2), stats.RowsAnalyzed)
}

func TestEngineScanIsolatesFailingTables(t *testing.T) {
	factory := newFakeFactory(map[string][]map[string]any{
		"good_a": {{"email": "ada@example.com"}},
		"good_b": {{"note": "clean"}},
	})
	factory.sampler.errs["broken"] = errors.New("relation does not exist")

	engine := NewEngine(factory, detectors.All(), time.Second, nil)
	tables := descriptors("good_a", "broken", "good_b")

	findings, stats := engine.Scan(context.Background(), tables, datasource.ConnectionParams{}, strategyFor(3, 2), nil)

	assert.Equal(t, 2, stats.TablesScanned)
	assert.Equal(t, 1, stats.TablesSkipped)
	assert.Equal(t, len(tables), stats.TablesScanned+stats.TablesSkipped)
	require.Len(t, findings, 1)
	assert.Equal(t, "email", findings[0].DetectorType)
}

func TestEngineScanTableTimeout(t *testing.T) {
	factory := newFakeFactory(map[string][]map[string]any{
		"fast": {{"note": "ok"}},
	})
	factory.sampler.delays["slow"] = 500 * time.Millisecond

	engine := NewEngine(factory, detectors.All(), 20*time.Millisecond, nil)

	_, stats := engine.Scan(context.Background(), descriptors("fast", "slow"), datasource.ConnectionParams{}, strategyFor(2, 2), nil)

	assert.Equal(t, 1, stats.TablesScanned)
	assert.Equal(t, 1, stats.TablesSkipped)
}

func TestEngineScanBudgetStopsDispatch(t *testing.T) {
	factory := newFakeFactory(map[string][]map[string]any{})
	for _, name := range []string{"t1", "t2", "t3"} {
		factory.sampler.rows[name] = []map[string]any{{"note": "ok"}}
		factory.sampler.delays[name] = 50 * time.Millisecond
	}

	engine := NewEngine(factory, detectors.All(), time.Second, nil)
	strategy := strategyFor(3, 1)
	strategy.MaxScanTime = 10 * time.Millisecond

	// One worker, 50ms per table, 10ms budget: the first table is dispatched
	// immediately, the budget expires while it is in flight, and nothing
	// further may be handed out once the worker frees up.
	_, stats := engine.Scan(context.Background(), descriptors("t1", "t2", "t3"), datasource.ConnectionParams{}, strategy, nil)

	assert.Equal(t, 3, stats.TablesScanned+stats.TablesSkipped)
	assert.Equal(t, 1, stats.TablesScanned)
	assert.Equal(t, 2, stats.TablesSkipped)
}

func TestEngineScanProgressMonotonic(t *testing.T) {
	rows := map[string][]map[string]any{}
	names := []string{"a", "b", "c", "d", "e"}
	for _, name := range names {
		rows[name] = []map[string]any{{"note": "x"}}
	}
	factory := newFakeFactory(rows)
	engine := NewEngine(factory, detectors.All(), time.Second, nil)

	var mu sync.Mutex
	var seen []int
	progress := func(completed, total int, _ string) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, len(names), total)
		seen = append(seen, completed)
	}

	engine.Scan(context.Background(), descriptors(names...), datasource.ConnectionParams{}, strategyFor(5, 3), progress)

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	assert.Equal(t, len(names), seen[len(seen)-1])
}

func TestEngineScanSamplerOpenFailure(t *testing.T) {
	factory := newFakeFactory(nil)
	factory.samplerErr = errors.New("connection refused")

	engine := NewEngine(factory, detectors.All(), time.Second, nil)

	findings, stats := engine.Scan(context.Background(), descriptors("a", "b"), datasource.ConnectionParams{}, strategyFor(2, 2), nil)

	assert.Empty(t, findings)
	assert.Equal(t, 0, stats.TablesScanned)
	assert.Equal(t, 2, stats.TablesSkipped)
}

func TestEngineScanClosesWorkerConnections(t *testing.T) {
	factory := newFakeFactory(map[string][]map[string]any{
		"a": {{"note": "x"}},
		"b": {{"note": "y"}},
		"c": {{"note": "z"}},
	})
	engine := NewEngine(factory, detectors.All(), time.Second, nil)

	engine.Scan(context.Background(), descriptors("a", "b", "c"), datasource.ConnectionParams{}, strategyFor(3, 3), nil)

	assert.Equal(t, factory.samplersOpened, factory.samplerCloses)
	assert.Greater(t, factory.samplersOpened, int32(0))
}

func TestEngineScanEmptySelection(t *testing.T) {
	engine := NewEngine(newFakeFactory(nil), detectors.All(), time.Second, nil)

	findings, stats := engine.Scan(context.Background(), nil, datasource.ConnectionParams{}, strategyFor(0, 2), nil)

	assert.Empty(t, findings)
	assert.Zero(t, stats.TablesScanned)
	assert.Zero(t, stats.TablesSkipped)
}
