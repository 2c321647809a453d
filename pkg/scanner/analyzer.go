package scanner

import (
	"github.com/privalens/privalens-engine/pkg/models"
)

// Priority bands used for the schema-level risk rollup.
const (
	highPriorityThreshold   = 2.5
	mediumPriorityThreshold = 1.5

	highRiskScoreThreshold   = 10.0
	mediumRiskScoreThreshold = 5.0
)

// Analyze scores every table, buckets them into priority bands, and derives
// an overall risk level for the schema. The riskScore weighs high-priority
// tables three times as heavily as medium-priority ones.
func Analyze(tables []models.TableDescriptor) models.SchemaAnalysis {
	analysis := models.SchemaAnalysis{
		Tables:      make([]models.TableDescriptor, len(tables)),
		TotalTables: len(tables),
	}

	for i, table := range tables {
		table.PriorityScore = ScoreTable(table)
		analysis.Tables[i] = table
		analysis.EstimatedRows += table.EstimatedRows

		switch {
		case table.PriorityScore >= highPriorityThreshold:
			analysis.Distribution.High++
		case table.PriorityScore >= mediumPriorityThreshold:
			analysis.Distribution.Medium++
		default:
			analysis.Distribution.Low++
		}
	}

	analysis.RiskScore = float64(analysis.Distribution.High)*3 + float64(analysis.Distribution.Medium)*1.5

	switch {
	case analysis.RiskScore > highRiskScoreThreshold:
		analysis.RiskLevel = models.RiskLevelHigh
	case analysis.RiskScore > mediumRiskScoreThreshold:
		analysis.RiskLevel = models.RiskLevelMedium
	default:
		analysis.RiskLevel = models.RiskLevelLow
	}

	return analysis
}
