package detectors

import (
	"regexp"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// Dutch postal codes: four digits (not starting with 0) plus two letters,
// optionally separated by a space. SA, SD and SS are never issued.
var postcodePattern = regexp.MustCompile(`\b[1-9]\d{3}\s?[A-Z]{2}\b`)

var forbiddenPostcodeSuffixes = map[string]bool{"SA": true, "SD": true, "SS": true}

// PostalCodeDetector finds Dutch postal codes.
type PostalCodeDetector struct{}

// NewPostalCodeDetector returns the postal code detector.
func NewPostalCodeDetector() *PostalCodeDetector {
	return &PostalCodeDetector{}
}

// Type returns the detector identifier.
func (d *PostalCodeDetector) Type() string {
	return "postal_code"
}

// Detect reports postal code candidates.
func (d *PostalCodeDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range postcodePattern.FindAllString(value, -1) {
		if forbiddenPostcodeSuffixes[match[len(match)-2:]] {
			continue
		}
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.7,
			Severity:     models.SeverityLow,
		})
	}
	return findings
}
