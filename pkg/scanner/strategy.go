package scanner

import (
	"time"

	"github.com/privalens/privalens-engine/pkg/models"
)

// DefaultMaxScanTime is the wall-clock budget attached to every strategy.
const DefaultMaxScanTime = 300 * time.Second

// SelectStrategy picks a scan strategy from the schema analysis and the
// requested mode. Rules are evaluated in order and the first match wins, so
// an explicit fast or deep mode overrides the size-based heuristics.
// maxTables, when non-nil, caps the table budget of the non-comprehensive
// strategies.
func SelectStrategy(analysis models.SchemaAnalysis, mode models.ScanMode, maxTables *int) models.ScanStrategy {
	total := analysis.TotalTables

	switch {
	case mode == models.ScanModeFast || total <= 10:
		return models.ScanStrategy{
			Kind:         models.StrategyComprehensive,
			TargetTables: minInt(total, 15),
			SampleSize:   100,
			Workers:      2,
			MaxScanTime:  DefaultMaxScanTime,
		}
	case mode == models.ScanModeDeep || analysis.RiskLevel == models.RiskLevelHigh:
		return models.ScanStrategy{
			Kind:         models.StrategyPriorityDeep,
			TargetTables: capTables(total, maxTables, 75),
			SampleSize:   500,
			Workers:      3,
			MaxScanTime:  DefaultMaxScanTime,
		}
	case analysis.EstimatedRows > 100_000 || total > 100:
		return models.ScanStrategy{
			Kind:         models.StrategySampling,
			TargetTables: capTables(total, maxTables, 40),
			SampleSize:   200,
			Workers:      3,
			MaxScanTime:  DefaultMaxScanTime,
		}
	case total > 50:
		return models.ScanStrategy{
			Kind:         models.StrategyPriority,
			TargetTables: capTables(total, maxTables, 50),
			SampleSize:   300,
			Workers:      3,
			MaxScanTime:  DefaultMaxScanTime,
		}
	default:
		return models.ScanStrategy{
			Kind:         models.StrategyComprehensive,
			TargetTables: total,
			SampleSize:   500,
			Workers:      2,
			MaxScanTime:  DefaultMaxScanTime,
		}
	}
}

// capTables resolves the table budget: the caller's override when present,
// the strategy default otherwise, never more than the discovered total.
func capTables(total int, override *int, fallback int) int {
	budget := fallback
	if override != nil {
		budget = *override
	}
	return minInt(budget, total)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
