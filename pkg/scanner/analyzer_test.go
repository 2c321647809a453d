package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/privalens/privalens-engine/pkg/models"
)

func TestAnalyzeDistribution(t *testing.T) {
	tables := []models.TableDescriptor{
		table("users", "id", "email"),      // high
		table("payments", "id"),            // high
		table("audit_log", "id"),           // medium
		table("app_sessions", "id"),        // medium
		table("inventory", "id", "sku"),    // low
	}

	analysis := Analyze(tables)

	assert.Equal(t, 5, analysis.TotalTables)
	assert.Equal(t, 2, analysis.Distribution.High)
	assert.Equal(t, 2, analysis.Distribution.Medium)
	assert.Equal(t, 1, analysis.Distribution.Low)
	// 2*3 + 2*1.5 = 9 -> medium band
	assert.InDelta(t, 9.0, analysis.RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelMedium, analysis.RiskLevel)
}

func TestAnalyzeRiskLevels(t *testing.T) {
	high := func(n int) []models.TableDescriptor {
		tables := make([]models.TableDescriptor, n)
		for i := range tables {
			tables[i] = table("customer_orders", "id")
		}
		return tables
	}

	assert.Equal(t, models.RiskLevelLow, Analyze(nil).RiskLevel)
	assert.Equal(t, models.RiskLevelLow, Analyze([]models.TableDescriptor{table("a"), table("b")}).RiskLevel)
	assert.Equal(t, models.RiskLevelLow, Analyze(high(1)).RiskLevel)
	// 3 high tables: score 9 -> medium
	assert.Equal(t, models.RiskLevelMedium, Analyze(high(3)).RiskLevel)
	// 4 high tables: score 12 -> high
	assert.Equal(t, models.RiskLevelHigh, Analyze(high(4)).RiskLevel)
}

func TestAnalyzeScoresAndCountsRows(t *testing.T) {
	tables := []models.TableDescriptor{
		{Name: "users", EstimatedRows: 1000},
		{Name: "orders", EstimatedRows: 250},
	}

	analysis := Analyze(tables)

	assert.Equal(t, int64(1250), analysis.EstimatedRows)
	for _, tbl := range analysis.Tables {
		assert.Greater(t, tbl.PriorityScore, 0.0)
	}
	// input slice must not be mutated
	assert.Zero(t, tables[0].PriorityScore)
}
