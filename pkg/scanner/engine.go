package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/detectors"
	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// ProgressFunc receives scan progress after every table completes. completed
// never decreases and never exceeds total.
type ProgressFunc func(completed, total int, message string)

// DefaultTableTimeout bounds how long a single table may be sampled before
// it is skipped.
const DefaultTableTimeout = 60 * time.Second

// Engine samples rows from a set of tables concurrently and runs every
// detector over every cell. Workers each own their own connection; results
// flow to a single aggregator goroutine so no state is shared between
// workers.
type Engine struct {
	factory      datasource.AdapterFactory
	detectors    []detectors.Detector
	tableTimeout time.Duration
	logger       *zap.Logger

	// OnTable, when set, is invoked from the aggregator for every table
	// that was scanned successfully.
	OnTable func(table string, findings int)
}

// NewEngine builds an engine. A zero tableTimeout falls back to
// DefaultTableTimeout; a nil logger falls back to zap.NewNop.
func NewEngine(factory datasource.AdapterFactory, dets []detectors.Detector, tableTimeout time.Duration, logger *zap.Logger) *Engine {
	if tableTimeout <= 0 {
		tableTimeout = DefaultTableTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		factory:      factory,
		detectors:    dets,
		tableTimeout: tableTimeout,
		logger:       logger,
	}
}

// tableOutcome is the message a worker sends to the aggregator for each
// table it finished, whether the table succeeded, timed out, or failed.
type tableOutcome struct {
	table       models.TableDescriptor
	findings    []models.Finding
	rowsSampled int
	err         error
}

// Scan samples the given tables with the strategy's worker count and sample
// size. Tables that fail or exceed the per-table timeout are skipped, not
// fatal. When the strategy's wall-clock budget runs out, no new tables are
// dispatched but in-flight tables finish, so the caller always gets a
// consistent partial result.
func (e *Engine) Scan(ctx context.Context, tables []models.TableDescriptor, params datasource.ConnectionParams, strategy models.ScanStrategy, progress ProgressFunc) ([]models.Finding, models.ScanStats) {
	if progress == nil {
		progress = func(int, int, string) {}
	}

	total := len(tables)
	stats := models.ScanStats{}
	if total == 0 {
		return nil, stats
	}

	workers := strategy.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan models.TableDescriptor)
	outcomes := make(chan tableOutcome, workers)

	var dispatched int
	var dispatchMu sync.Mutex

	go func() {
		defer close(jobs)

		// A nil channel blocks forever, so no budget means no cutoff.
		var budget <-chan time.Time
		if strategy.MaxScanTime > 0 {
			timer := time.NewTimer(strategy.MaxScanTime)
			defer timer.Stop()
			budget = timer.C
		}

		for _, table := range tables {
			select {
			case jobs <- table:
				dispatchMu.Lock()
				dispatched++
				dispatchMu.Unlock()
			case <-budget:
				e.logger.Warn("scan budget exhausted, skipping remaining tables",
					zap.Duration("budget", strategy.MaxScanTime))
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.runWorker(ctx, params, strategy.SampleSize, jobs, outcomes)
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var findings []models.Finding
	completed := 0
	for outcome := range outcomes {
		completed++
		name := outcome.table.QualifiedName()
		if outcome.err != nil {
			stats.TablesSkipped++
			e.logger.Warn("table skipped",
				zap.String("table", name),
				zap.String("error", logging.SanitizeError(outcome.err)))
			progress(completed, total, fmt.Sprintf("skipped %s", name))
			continue
		}
		stats.TablesScanned++
		stats.RowsAnalyzed += int64(outcome.rowsSampled)
		findings = append(findings, outcome.findings...)
		if e.OnTable != nil {
			e.OnTable(name, len(outcome.findings))
		}
		progress(completed, total, fmt.Sprintf("scanned %s", name))
	}

	dispatchMu.Lock()
	undispatched := total - dispatched
	dispatchMu.Unlock()
	if undispatched > 0 {
		stats.TablesSkipped += undispatched
		progress(total, total, fmt.Sprintf("stopped early, %d tables not scanned", undispatched))
	}

	return findings, stats
}

// runWorker opens its own sampler and processes tables until the job
// channel closes. If the connection cannot be opened, every table the
// worker receives is reported as skipped so the aggregator's accounting
// stays complete.
func (e *Engine) runWorker(ctx context.Context, params datasource.ConnectionParams, sampleSize int, jobs <-chan models.TableDescriptor, outcomes chan<- tableOutcome) {
	sampler, err := e.factory.NewRowSampler(ctx, params)
	if err != nil {
		for table := range jobs {
			outcomes <- tableOutcome{table: table, err: fmt.Errorf("open sampler: %w", err)}
		}
		return
	}
	defer sampler.Close()

	for table := range jobs {
		outcomes <- e.scanTable(ctx, sampler, table, sampleSize)
	}
}

func (e *Engine) scanTable(ctx context.Context, sampler datasource.RowSampler, table models.TableDescriptor, sampleSize int) tableOutcome {
	tableCtx, cancel := context.WithTimeout(ctx, e.tableTimeout)
	defer cancel()

	rows, err := sampler.SampleRows(tableCtx, table.SchemaName, table.Name, sampleSize)
	if err != nil {
		return tableOutcome{table: table, err: err}
	}

	outcome := tableOutcome{table: table, rowsSampled: len(rows)}
	for _, row := range rows {
		for column, value := range row {
			text := cellText(value)
			if text == "" {
				continue
			}
			for _, det := range e.detectors {
				for _, finding := range detect(det, text, e.logger) {
					finding.TableName = table.QualifiedName()
					finding.ColumnName = column
					outcome.findings = append(outcome.findings, finding)
				}
			}
		}
	}
	return outcome
}

// detect shields the scan from a detector panicking on malformed input; the
// detector's contribution for that cell is dropped and the scan continues.
func detect(det detectors.Detector, value string, logger *zap.Logger) (findings []models.Finding) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("detector panicked",
				zap.String("detector", det.Type()),
				zap.Any("panic", r))
			findings = nil
		}
	}()
	return det.Detect(value)
}

// cellText renders a sampled cell for detection. Nil cells and non-textual
// values that cannot hold identifiers are skipped cheaply.
func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
