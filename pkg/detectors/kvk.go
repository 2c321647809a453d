package detectors

import (
	"regexp"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

var kvkPattern = regexp.MustCompile(`\b\d{8}\b`)

// KVKDetector finds 8-digit business registration numbers (KvK-nummer).
// The format carries no independent checksum, so any 8-digit number
// matches; confidence stays low to reflect the false-positive rate.
type KVKDetector struct{}

// NewKVKDetector returns the business registration number detector.
func NewKVKDetector() *KVKDetector {
	return &KVKDetector{}
}

// Type returns the detector identifier.
func (d *KVKDetector) Type() string {
	return "kvk"
}

// Detect reports 8-digit sequences.
func (d *KVKDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range kvkPattern.FindAllString(value, -1) {
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.5,
			Severity:     models.SeverityMedium,
		})
	}
	return findings
}
