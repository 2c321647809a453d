package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
	"github.com/privalens/privalens-engine/pkg/config"
	"github.com/privalens/privalens-engine/pkg/detectors"
	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// ScanRequest describes one scan invocation.
type ScanRequest struct {
	Params datasource.ConnectionParams
	// Mode defaults to smart when empty.
	Mode models.ScanMode
	// MaxTables caps the table budget of priority and sampling strategies.
	MaxTables *int
	// Progress, when set, is invoked after every table completes.
	Progress ProgressFunc
}

// Service runs end-to-end scans: introspect, score, pick a strategy, sample
// in parallel, aggregate.
type Service struct {
	factory   datasource.AdapterFactory
	detectors []detectors.Detector
	cfg       config.ScanConfig
	logger    *zap.Logger
	cache     Cache
	tracker   ActivityTracker
}

// Option customizes a Service.
type Option func(*Service)

// WithCache plugs in schema analysis caching.
func WithCache(cache Cache) Option {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithActivityTracker plugs in scan lifecycle reporting.
func WithActivityTracker(tracker ActivityTracker) Option {
	return func(s *Service) {
		if tracker != nil {
			s.tracker = tracker
		}
	}
}

// WithDetectors replaces the default detector set.
func WithDetectors(dets []detectors.Detector) Option {
	return func(s *Service) {
		if len(dets) > 0 {
			s.detectors = dets
		}
	}
}

// NewService builds a scan service. A nil logger falls back to zap.NewNop.
func NewService(factory datasource.AdapterFactory, cfg config.ScanConfig, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		factory:   factory,
		detectors: detectors.All(),
		cfg:       cfg,
		logger:    logger,
		cache:     NopCache(),
		tracker:   NopActivityTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunScan executes a full scan of one database. Connection failures abort
// the scan; everything past a successful connection degrades gracefully and
// still yields a result with accurate skip accounting.
func (s *Service) RunScan(ctx context.Context, req ScanRequest) (*models.ScanResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = models.ScanModeSmart
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidScanMode, req.Mode)
	}

	scanID := uuid.New()
	started := time.Now()
	logger := s.logger.With(
		zap.String("scan_id", scanID.String()),
		zap.String("engine", req.Params.Engine),
		zap.String("mode", string(mode)),
	)
	s.tracker.ScanStarted(scanID, req.Params.Engine)

	analysis, err := s.analyzeSchema(ctx, req.Params, logger)
	if err != nil {
		return nil, err
	}
	if analysis.TotalTables == 0 {
		logger.Info("no tables discovered", zap.String("database", req.Params.Database))
	}

	strategy := SelectStrategy(*analysis, mode, req.MaxTables)
	strategy.SampleSize = datasource.ClampSampleLimit(minInt(strategy.SampleSize, s.cfg.MaxSampleSize))
	if s.cfg.MaxWorkers > 0 && strategy.Workers > s.cfg.MaxWorkers {
		strategy.Workers = s.cfg.MaxWorkers
	}
	if s.cfg.MaxScanTimeSeconds > 0 {
		strategy.MaxScanTime = s.cfg.MaxScanTime()
	}
	logger.Info("strategy selected",
		zap.String("strategy", string(strategy.Kind)),
		zap.Int("target_tables", strategy.TargetTables),
		zap.Int("sample_size", strategy.SampleSize),
		zap.Int("workers", strategy.Workers),
		zap.String("risk_level", string(analysis.RiskLevel)))

	selected := SelectTables(analysis.Tables, strategy)

	engine := NewEngine(s.factory, s.detectors, s.cfg.TableTimeout(), logger)
	engine.OnTable = func(table string, findingCount int) {
		s.tracker.TableScanned(scanID, table, findingCount)
	}
	findings, stats := engine.Scan(ctx, selected, req.Params, strategy, req.Progress)

	if err := ctx.Err(); err != nil {
		logger.Warn("scan interrupted", zap.Error(err))
	}

	result := &models.ScanResult{
		ScanID:           scanID,
		Findings:         findings,
		TablesDiscovered: analysis.TotalTables,
		TablesScanned:    stats.TablesScanned,
		TablesSkipped:    stats.TablesSkipped,
		RowsAnalyzed:     stats.RowsAnalyzed,
		ElapsedSeconds:   time.Since(started).Seconds(),
		CoveragePercent:  models.Coverage(stats.TablesScanned, analysis.TotalTables),
		RiskLevel:        analysis.RiskLevel,
		Strategy:         strategy,
		StartedAt:        started,
	}
	s.tracker.ScanCompleted(scanID, result)
	logger.Info("scan completed",
		zap.Int("tables_scanned", result.TablesScanned),
		zap.Int("tables_skipped", result.TablesSkipped),
		zap.Int("findings", len(result.Findings)),
		zap.Float64("coverage_percent", result.CoveragePercent),
		zap.Float64("elapsed_seconds", result.ElapsedSeconds))
	return result, nil
}

// TestConnection verifies a database is reachable without scanning anything.
func (s *Service) TestConnection(ctx context.Context, params datasource.ConnectionParams) error {
	tester, err := s.factory.NewConnectionTester(ctx, params)
	if err != nil {
		return connectionError(params.Engine, err)
	}
	defer tester.Close()
	if err := tester.TestConnection(ctx); err != nil {
		return connectionError(params.Engine, err)
	}
	return nil
}

// connectionError classifies a failure as connection-level, leaving errors
// the adapters already classified untouched.
func connectionError(engine string, err error) error {
	var connErr *apperrors.ConnectionError
	if errors.As(err, &connErr) {
		return err
	}
	return apperrors.NewConnectionError(engine, err)
}

// analyzeSchema introspects tables and columns (one connection, done before
// the parallel phase), scores them, and rolls up risk. Cached analyses are
// reused per connection fingerprint. A table whose columns cannot be read
// is excluded and logged; only a full discovery failure is fatal.
func (s *Service) analyzeSchema(ctx context.Context, params datasource.ConnectionParams, logger *zap.Logger) (*models.SchemaAnalysis, error) {
	key := fingerprint(params)
	if cached, ok := s.cache.GetSchemaAnalysis(key); ok {
		logger.Debug("schema analysis cache hit", zap.String("fingerprint", key))
		return cached, nil
	}

	introspector, err := s.factory.NewSchemaIntrospector(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrScanCancelled, ctx.Err())
		}
		return nil, connectionError(params.Engine, err)
	}
	defer introspector.Close()

	tableInfos, err := introspector.DiscoverTables(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrScanCancelled, ctx.Err())
		}
		return nil, connectionError(params.Engine, err)
	}

	tables := make([]models.TableDescriptor, 0, len(tableInfos))
	for _, info := range tableInfos {
		columnInfos, err := introspector.DiscoverColumns(ctx, info.SchemaName, info.TableName)
		if err != nil {
			ierr := &apperrors.IntrospectionError{Engine: params.Engine, Table: info.TableName, Cause: err}
			logger.Warn("table excluded from analysis",
				zap.String("table", info.TableName),
				zap.String("error", logging.SanitizeError(ierr)))
			continue
		}
		columns := make([]models.ColumnDescriptor, len(columnInfos))
		for i, col := range columnInfos {
			columns[i] = models.ColumnDescriptor{Name: col.ColumnName, DataType: col.DataType}
		}
		tables = append(tables, models.TableDescriptor{
			SchemaName:    info.SchemaName,
			Name:          info.TableName,
			EstimatedRows: info.RowCount,
			Columns:       columns,
		})
	}

	analysis := Analyze(tables)
	logger.Info("schema analyzed",
		zap.Int("tables", analysis.TotalTables),
		zap.Int64("estimated_rows", analysis.EstimatedRows),
		zap.Int("high_priority", analysis.Distribution.High),
		zap.String("risk_level", string(analysis.RiskLevel)))
	s.cache.SetSchemaAnalysis(key, &analysis)
	return &analysis, nil
}

// fingerprint identifies a database for cache keying. Credentials stay out
// of the key.
func fingerprint(params datasource.ConnectionParams) string {
	return fmt.Sprintf("%s://%s:%d/%s", params.Engine, params.Host, params.Port, params.Database)
}
