package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/privalens/privalens-engine/pkg/models"
)

func TestSelectTablesOrdersByScore(t *testing.T) {
	tables := []models.TableDescriptor{
		{Name: "inventory", PriorityScore: 1.0},
		{Name: "users", PriorityScore: 3.5},
		{Name: "audit_log", PriorityScore: 2.0},
		{Name: "payments", PriorityScore: 2.8},
	}

	selected := SelectTables(tables, models.ScanStrategy{TargetTables: 4})

	names := make([]string, len(selected))
	for i, tbl := range selected {
		names[i] = tbl.Name
	}
	assert.Equal(t, []string{"users", "payments", "audit_log", "inventory"}, names)
}

func TestSelectTablesTruncatesToBudget(t *testing.T) {
	tables := []models.TableDescriptor{
		{Name: "a", PriorityScore: 1.0},
		{Name: "b", PriorityScore: 3.0},
		{Name: "c", PriorityScore: 2.0},
	}

	selected := SelectTables(tables, models.ScanStrategy{TargetTables: 2})

	assert.Len(t, selected, 2)
	assert.Equal(t, "b", selected[0].Name)
	assert.Equal(t, "c", selected[1].Name)
}

func TestSelectTablesStableOnTies(t *testing.T) {
	tables := []models.TableDescriptor{
		{Name: "first", PriorityScore: 2.0},
		{Name: "second", PriorityScore: 2.0},
		{Name: "third", PriorityScore: 2.0},
	}

	for i := 0; i < 10; i++ {
		selected := SelectTables(tables, models.ScanStrategy{TargetTables: 3})
		assert.Equal(t, "first", selected[0].Name)
		assert.Equal(t, "second", selected[1].Name)
		assert.Equal(t, "third", selected[2].Name)
	}
}

func TestSelectTablesDoesNotMutateInput(t *testing.T) {
	tables := []models.TableDescriptor{
		{Name: "low", PriorityScore: 1.0},
		{Name: "high", PriorityScore: 3.0},
	}

	SelectTables(tables, models.ScanStrategy{TargetTables: 1})

	assert.Equal(t, "low", tables[0].Name)
	assert.Equal(t, "high", tables[1].Name)
}
