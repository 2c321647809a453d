package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privalens/privalens-engine/pkg/models"
)

func TestAll_ReturnsFullSet(t *testing.T) {
	set := All()
	require.Len(t, set, 7)

	seen := make(map[string]bool)
	for _, d := range set {
		assert.False(t, seen[d.Type()], "duplicate detector type %s", d.Type())
		seen[d.Type()] = true
	}
}

func TestKVKDetector_Detect(t *testing.T) {
	d := NewKVKDetector()

	findings := d.Detect("kvk 12345678")
	require.Len(t, findings, 1)
	assert.Equal(t, "kvk", findings[0].DetectorType)
	assert.Equal(t, models.SeverityMedium, findings[0].Severity)
	// Bare 8-digit pattern; confidence reflects the false-positive rate.
	assert.InDelta(t, 0.5, findings[0].Confidence, 0.001)

	assert.Empty(t, d.Detect("123456789"), "9 digits must not match")
	assert.Empty(t, d.Detect("1234567"), "7 digits must not match")
}

func TestPostalCodeDetector_Detect(t *testing.T) {
	d := NewPostalCodeDetector()

	assert.Len(t, d.Detect("1012 AB Amsterdam"), 1)
	assert.Len(t, d.Detect("3511XE"), 1)
	assert.Empty(t, d.Detect("0123 AB"), "postal codes never start with 0")
	assert.Empty(t, d.Detect("1234 SS"), "SA/SD/SS suffixes are never issued")
}

func TestPhoneDetector_Detect(t *testing.T) {
	d := NewPhoneDetector()

	tests := []struct {
		name    string
		input   string
		matches int
	}{
		{"national form", "bel 0612345678", 1},
		{"international form", "+31 6 12345678", 1},
		{"us style number", "123-456-7890", 0},
		{"international with separators", "+31-20-1234567", 1},
		{"plain words", "geen telefoonnummer", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, d.Detect(tt.input), tt.matches)
		})
	}
}

func TestEmailDetector_Detect(t *testing.T) {
	d := NewEmailDetector()

	findings := d.Detect("contact j.devries@example.nl please")
	require.Len(t, findings, 1)
	assert.Equal(t, "email", findings[0].DetectorType)

	assert.Empty(t, d.Detect("not-an-email"))
}

func TestCreditCardDetector_Detect(t *testing.T) {
	d := NewCreditCardDetector()

	findings := d.Detect("card 4111 1111 1111 1111")
	require.Len(t, findings, 1)
	assert.Equal(t, "credit_card", findings[0].DetectorType)
	assert.Equal(t, RegulationPaymentCard, findings[0].Regulation)

	assert.Empty(t, d.Detect("4111 1111 1111 1112"), "luhn failure must be discarded")
}
