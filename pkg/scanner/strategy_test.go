package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/privalens/privalens-engine/pkg/models"
)

func schemaOf(total int, rows int64, risk models.RiskLevel) models.SchemaAnalysis {
	return models.SchemaAnalysis{
		TotalTables:   total,
		EstimatedRows: rows,
		RiskLevel:     risk,
	}
}

func intPtr(n int) *int { return &n }

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name      string
		analysis  models.SchemaAnalysis
		mode      models.ScanMode
		maxTables *int
		want      models.ScanStrategy
	}{
		{
			name:     "small schema gets comprehensive",
			analysis: schemaOf(9, 5000, models.RiskLevelLow),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategyComprehensive, TargetTables: 9, SampleSize: 100, Workers: 2, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "fast mode wins even for huge risky schemas",
			analysis: schemaOf(500, 50_000_000, models.RiskLevelHigh),
			mode:     models.ScanModeFast,
			want: models.ScanStrategy{
				Kind: models.StrategyComprehensive, TargetTables: 15, SampleSize: 100, Workers: 2, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "deep mode forces priority deep",
			analysis: schemaOf(30, 5000, models.RiskLevelLow),
			mode:     models.ScanModeDeep,
			want: models.ScanStrategy{
				Kind: models.StrategyPriorityDeep, TargetTables: 30, SampleSize: 500, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "high risk forces priority deep before sampling",
			analysis: schemaOf(200, 50_000_000, models.RiskLevelHigh),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategyPriorityDeep, TargetTables: 75, SampleSize: 500, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "large row count triggers sampling",
			analysis: schemaOf(40, 200_000, models.RiskLevelLow),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategySampling, TargetTables: 40, SampleSize: 200, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "many tables trigger sampling",
			analysis: schemaOf(150, 1000, models.RiskLevelLow),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategySampling, TargetTables: 40, SampleSize: 200, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "mid-size schema gets priority",
			analysis: schemaOf(60, 1000, models.RiskLevelLow),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategyPriority, TargetTables: 50, SampleSize: 300, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:     "default comprehensive covers everything",
			analysis: schemaOf(25, 1000, models.RiskLevelMedium),
			mode:     models.ScanModeSmart,
			want: models.ScanStrategy{
				Kind: models.StrategyComprehensive, TargetTables: 25, SampleSize: 500, Workers: 2, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:      "max tables caps priority deep",
			analysis:  schemaOf(200, 1000, models.RiskLevelHigh),
			mode:      models.ScanModeSmart,
			maxTables: intPtr(20),
			want: models.ScanStrategy{
				Kind: models.StrategyPriorityDeep, TargetTables: 20, SampleSize: 500, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
		{
			name:      "max tables never exceeds discovered total",
			analysis:  schemaOf(60, 1000, models.RiskLevelLow),
			mode:      models.ScanModeSmart,
			maxTables: intPtr(500),
			want: models.ScanStrategy{
				Kind: models.StrategyPriority, TargetTables: 60, SampleSize: 300, Workers: 3, MaxScanTime: DefaultMaxScanTime,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectStrategy(tc.analysis, tc.mode, tc.maxTables)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got.TargetTables, tc.analysis.TotalTables)
		})
	}
}

func TestSelectStrategyDeterministic(t *testing.T) {
	analysis := schemaOf(120, 2_000_000, models.RiskLevelMedium)
	first := SelectStrategy(analysis, models.ScanModeSmart, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, SelectStrategy(analysis, models.ScanModeSmart, nil))
	}
}
