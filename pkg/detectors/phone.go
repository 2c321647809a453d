package detectors

import (
	"regexp"
	"strings"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// Dutch phone numbers in national (0...) or international (+31/0031) form,
// allowing common space/dash separators.
var phonePattern = regexp.MustCompile(`(?:\+31|0031|0)[\s-]?[1-9](?:[\s-]?\d){8}`)

// PhoneDetector finds phone numbers with a digit-count validation pass on
// top of the pattern match.
type PhoneDetector struct{}

// NewPhoneDetector returns the phone number detector.
func NewPhoneDetector() *PhoneDetector {
	return &PhoneDetector{}
}

// Type returns the detector identifier.
func (d *PhoneDetector) Type() string {
	return "phone"
}

// Detect reports phone number candidates with a valid digit count.
func (d *PhoneDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range phonePattern.FindAllString(value, -1) {
		if !validPhoneDigits(match) {
			continue
		}
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.8,
			Severity:     models.SeverityMedium,
		})
	}
	return findings
}

// validPhoneDigits strips separators and checks the digit count: 10 for
// national form, 11 for +31, 13 for 0031.
func validPhoneDigits(s string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	switch {
	case strings.HasPrefix(s, "+31"):
		return len(digits) == 11
	case strings.HasPrefix(s, "0031"):
		return len(digits) == 13
	default:
		return len(digits) == 10
	}
}
