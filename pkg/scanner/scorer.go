package scanner

import (
	"strings"

	"github.com/privalens/privalens-engine/pkg/models"
)

// Keyword weights are matched as substrings of lowercased identifiers, so
// "customer_profiles" hits "customer" and "user_email" hits "email".
var tableKeywordWeights = map[string]float64{
	"user":        3.0,
	"customer":    3.0,
	"employee":    3.0,
	"patient":     3.0,
	"medical":     3.0,
	"health":      3.0,
	"payment":     2.8,
	"billing":     2.8,
	"financial":   2.8,
	"transaction": 2.5,
	"contact":     2.5,
	"address":     2.5,
	"phone":       2.5,
	"email":       2.5,
	"session":     2.0,
	"audit":       2.0,
	"system":      1.2,
	"temp":        0.8,
	"test":        0.5,
}

var columnKeywordWeights = map[string]float64{
	"ssn":      3.0,
	"bsn":      3.0,
	"passport": 3.0,
	"medical":  3.0,
	"health":   3.0,
	"password": 2.8,
	"token":    2.8,
	"secret":   2.8,
	"bank":     2.8,
	"iban":     2.8,
	"birth":    2.8,
	"email":    2.5,
	"phone":    2.5,
	"salary":   2.5,
	"address":  2.2,
}

const columnBoostFactor = 0.3

// ScoreTable computes a sensitivity priority score for a table from its name
// and column names. The score starts at 1.0, is raised to the strongest
// matching table keyword, then boosted by a fraction of the strongest
// matching column keyword, and is capped at models.MaxPriorityScore.
func ScoreTable(table models.TableDescriptor) float64 {
	base := 1.0

	tableName := strings.ToLower(table.Name)
	for keyword, weight := range tableKeywordWeights {
		if strings.Contains(tableName, keyword) && weight > base {
			base = weight
		}
	}

	maxColumn := 0.0
	for _, column := range table.Columns {
		columnName := strings.ToLower(column.Name)
		for keyword, weight := range columnKeywordWeights {
			if strings.Contains(columnName, keyword) && weight > maxColumn {
				maxColumn = weight
			}
		}
	}

	score := base + maxColumn*columnBoostFactor
	if score > models.MaxPriorityScore {
		score = models.MaxPriorityScore
	}
	return score
}
