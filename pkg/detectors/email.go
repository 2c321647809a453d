package detectors

import (
	"regexp"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailDetector finds email addresses.
type EmailDetector struct{}

// NewEmailDetector returns the email detector.
func NewEmailDetector() *EmailDetector {
	return &EmailDetector{}
}

// Type returns the detector identifier.
func (d *EmailDetector) Type() string {
	return "email"
}

// Detect reports email address candidates.
func (d *EmailDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range emailPattern.FindAllString(value, -1) {
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.9,
			Severity:     models.SeverityMedium,
		})
	}
	return findings
}
