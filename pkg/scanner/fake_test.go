package scanner

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// fakeSampler serves canned rows per table name. Delays honor context
// cancellation so per-table timeouts behave like a real driver.
type fakeSampler struct {
	rows   map[string][]map[string]any
	errs   map[string]error
	delays map[string]time.Duration
	closes *int32
}

func (s *fakeSampler) SampleRows(ctx context.Context, _, tableName string, limit int) ([]map[string]any, error) {
	if d := s.delays[tableName]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := s.errs[tableName]; err != nil {
		return nil, err
	}
	rows := s.rows[tableName]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *fakeSampler) Close() error {
	atomic.AddInt32(s.closes, 1)
	return nil
}

type fakeIntrospector struct {
	tables  []datasource.TableInfo
	columns map[string][]datasource.ColumnInfo
	colErrs map[string]error
	listErr error
}

func (i *fakeIntrospector) DiscoverTables(context.Context) ([]datasource.TableInfo, error) {
	if i.listErr != nil {
		return nil, i.listErr
	}
	return i.tables, nil
}

func (i *fakeIntrospector) DiscoverColumns(_ context.Context, _, tableName string) ([]datasource.ColumnInfo, error) {
	if err := i.colErrs[tableName]; err != nil {
		return nil, err
	}
	return i.columns[tableName], nil
}

func (i *fakeIntrospector) Close() error { return nil }

type fakeTester struct {
	err error
}

func (t *fakeTester) TestConnection(context.Context) error { return t.err }
func (t *fakeTester) Close() error                         { return nil }

// fakeFactory wires the fakes into the datasource.AdapterFactory shape and
// counts how often each adapter kind was opened.
type fakeFactory struct {
	sampler      *fakeSampler
	introspector *fakeIntrospector
	tester       *fakeTester

	samplerErr      error
	introspectorErr error

	samplersOpened      int32
	introspectorsOpened int32
	samplerCloses       int32
}

func (f *fakeFactory) NewConnectionTester(context.Context, datasource.ConnectionParams) (datasource.ConnectionTester, error) {
	if f.tester == nil {
		return &fakeTester{}, nil
	}
	return f.tester, nil
}

func (f *fakeFactory) NewSchemaIntrospector(context.Context, datasource.ConnectionParams) (datasource.SchemaIntrospector, error) {
	if f.introspectorErr != nil {
		return nil, f.introspectorErr
	}
	atomic.AddInt32(&f.introspectorsOpened, 1)
	return f.introspector, nil
}

func (f *fakeFactory) NewRowSampler(context.Context, datasource.ConnectionParams) (datasource.RowSampler, error) {
	if f.samplerErr != nil {
		return nil, f.samplerErr
	}
	atomic.AddInt32(&f.samplersOpened, 1)
	return &fakeSampler{
		rows:   f.sampler.rows,
		errs:   f.sampler.errs,
		delays: f.sampler.delays,
		closes: &f.samplerCloses,
	}, nil
}

func (f *fakeFactory) ListTypes() []datasource.AdapterInfo { return nil }

func newFakeFactory(rows map[string][]map[string]any) *fakeFactory {
	return &fakeFactory{
		sampler: &fakeSampler{
			rows:   rows,
			errs:   map[string]error{},
			delays: map[string]time.Duration{},
		},
	}
}

var _ datasource.AdapterFactory = (*fakeFactory)(nil)
