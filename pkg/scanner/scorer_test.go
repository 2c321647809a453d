package scanner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/privalens/privalens-engine/pkg/models"
)

func table(name string, columns ...string) models.TableDescriptor {
	t := models.TableDescriptor{Name: name}
	for _, c := range columns {
		t.Columns = append(t.Columns, models.ColumnDescriptor{Name: c, DataType: "text"})
	}
	return t
}

func TestScoreTable(t *testing.T) {
	tests := []struct {
		name  string
		table models.TableDescriptor
		want  float64
	}{
		{"plain table", table("inventory", "id", "sku", "quantity"), 1.0},
		{"customer table no sensitive columns", table("customers", "id", "created_at"), 3.0},
		{"customer table with contact columns", table("customer_profiles", "id", "email", "phone", "address"), 3.5},
		{"payment table", table("payments", "id", "amount"), 2.8},
		{"column boost only", table("records", "email"), 1.0 + 2.5*0.3},
		{"bsn column", table("registrations", "bsn"), 1.0 + 3.0*0.3},
		{"case insensitive", table("USER_ACCOUNTS", "PASSWORD_HASH"), 3.5},
		{"substring match", table("app_sessions", "id"), 2.0},
		{"weak keyword never lowers base", table("test_results", "id"), 1.0},
		{"no columns", table("audit_log"), 2.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ScoreTable(tc.table), 1e-9)
		})
	}
}

func TestScoreTableBounds(t *testing.T) {
	names := []string{"users", "payments", "tmp", "test", "x", "medical_records", "user_payment_medical"}
	columns := [][]string{nil, {"id"}, {"bsn", "password", "email"}, {"ssn", "secret", "bank_account", "birth_date"}}

	for _, name := range names {
		for i, cols := range columns {
			score := ScoreTable(table(name, cols...))
			assert.GreaterOrEqual(t, score, 1.0, fmt.Sprintf("%s/%d", name, i))
			assert.LessOrEqual(t, score, models.MaxPriorityScore, fmt.Sprintf("%s/%d", name, i))
		}
	}
}

func TestScoreTableDeterministic(t *testing.T) {
	tbl := table("employee_health", "bsn", "email", "salary", "notes")
	first := ScoreTable(tbl)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ScoreTable(tbl))
	}
}
