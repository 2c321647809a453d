package scanner

import (
	"sort"

	"github.com/privalens/privalens-engine/pkg/models"
)

// SelectTables orders tables by descending priority score and truncates to
// the strategy's table budget. The sort is stable so tables with equal
// scores keep their discovery order, which keeps repeated selections
// deterministic for the same schema.
func SelectTables(tables []models.TableDescriptor, strategy models.ScanStrategy) []models.TableDescriptor {
	selected := make([]models.TableDescriptor, len(tables))
	copy(selected, tables)

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].PriorityScore > selected[j].PriorityScore
	})

	if strategy.TargetTables < len(selected) {
		selected = selected[:strategy.TargetTables]
	}
	return selected
}
