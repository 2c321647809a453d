package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privalens/privalens-engine/pkg/models"
)

func TestValidBSN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		// 1*9+2*8+3*7+4*6+5*5+6*4+7*3+8*2 - 2 = 154, divisible by 11
		{"known valid vector", "123456782", true},
		{"another valid number", "111222333", true},
		{"off by one digit", "123456783", false},
		{"sequential digits", "123456789", false},
		{"too short", "12345678", false},
		{"too long", "1234567890", false},
		{"non-digit", "12345678a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidBSN(tt.input))
		})
	}
}

func TestBSNDetector_Detect(t *testing.T) {
	d := NewBSNDetector()

	t.Run("valid bsn in free text", func(t *testing.T) {
		findings := d.Detect("bsn: 123456782 registered")
		require.Len(t, findings, 1)
		assert.Equal(t, "bsn", findings[0].DetectorType)
		assert.Equal(t, models.SeverityCritical, findings[0].Severity)
		assert.Equal(t, RegulationSpecialCategory, findings[0].Regulation)
		// The raw value must never appear in the finding.
		assert.NotContains(t, findings[0].MatchedValue, "123456782")
	})

	t.Run("checksum-invalid match is discarded", func(t *testing.T) {
		assert.Empty(t, d.Detect("order 123456789"))
	})

	t.Run("embedded in longer number is not matched", func(t *testing.T) {
		assert.Empty(t, d.Detect("1234567820"))
	})

	t.Run("multiple values", func(t *testing.T) {
		findings := d.Detect("123456782 and 111222333")
		assert.Len(t, findings, 2)
	})
}

func TestBSNDetector_Deterministic(t *testing.T) {
	d := NewBSNDetector()
	first := d.Detect("123456782")
	second := d.Detect("123456782")
	assert.Equal(t, first, second)
}
