package detectors

import (
	"regexp"
	"strings"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

var ibanPattern = regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{10,30}\b`)

// IBANDetector finds international bank account numbers and validates them
// with the ISO 13616 mod-97 check.
type IBANDetector struct{}

// NewIBANDetector returns the IBAN detector.
func NewIBANDetector() *IBANDetector {
	return &IBANDetector{}
}

// Type returns the detector identifier.
func (d *IBANDetector) Type() string {
	return "iban"
}

// Detect reports mod-97-valid IBAN candidates.
func (d *IBANDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range ibanPattern.FindAllString(value, -1) {
		if !ValidIBAN(match) {
			continue
		}
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.95,
			Severity:     models.SeverityHigh,
		})
	}
	return findings
}

// ValidIBAN applies the ISO 13616 mod-97 check: move the first four
// characters to the end, expand letters to two-digit numbers (A=10..Z=35),
// and require the resulting number to be 1 modulo 97.
func ValidIBAN(s string) bool {
	if len(s) < 15 || len(s) > 34 {
		return false
	}

	rearranged := s[4:] + s[:4]

	var expanded strings.Builder
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			expanded.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			expanded.WriteByte('1' + (c-'A')/10)
			expanded.WriteByte('0' + (c-'A')%10)
		default:
			return false
		}
	}

	// Piecewise mod 97 avoids big-integer arithmetic.
	remainder := 0
	digits := expanded.String()
	for i := 0; i < len(digits); i++ {
		remainder = (remainder*10 + int(digits[i]-'0')) % 97
	}

	return remainder == 1
}
