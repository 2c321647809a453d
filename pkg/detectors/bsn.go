package detectors

import (
	"regexp"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// RegulationSpecialCategory tags findings that fall under the GDPR's
// special-category data regime.
const RegulationSpecialCategory = "GDPR Art. 9 (special category data)"

var bsnPattern = regexp.MustCompile(`\b\d{9}\b`)

// BSNDetector finds Dutch citizen service numbers (burgerservicenummer).
// A candidate is only reported when it passes the 11-proof checksum, which
// discards the overwhelming majority of unrelated 9-digit numbers.
type BSNDetector struct{}

// NewBSNDetector returns the BSN detector.
func NewBSNDetector() *BSNDetector {
	return &BSNDetector{}
}

// Type returns the detector identifier.
func (d *BSNDetector) Type() string {
	return "bsn"
}

// Detect reports checksum-valid 9-digit sequences. Checksum-invalid matches
// are discarded, not reported, to avoid false positives.
func (d *BSNDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range bsnPattern.FindAllString(value, -1) {
		if !ValidBSN(match) {
			continue
		}
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.98,
			Severity:     models.SeverityCritical,
			Regulation:   RegulationSpecialCategory,
		})
	}
	return findings
}

// ValidBSN applies the 11-proof checksum to a 9-digit string: for digits
// d0..d8, sum(d_i x (9-i)) for i in 0..7, minus d8, must be divisible
// by 11. Non-9-digit input is invalid by definition.
func ValidBSN(s string) bool {
	if len(s) != 9 {
		return false
	}

	checksum := 0
	for i := 0; i < 8; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		checksum += int(c-'0') * (9 - i)
	}

	last := s[8]
	if last < '0' || last > '9' {
		return false
	}
	checksum -= int(last - '0')

	return checksum%11 == 0
}
