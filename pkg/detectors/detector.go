// Package detectors implements pattern and checksum based detection of
// structured personal identifiers. Every detector is stateless and
// side-effect-free so the scan engine can run them concurrently across
// workers without synchronization. Matched values are masked before they
// are stored in a finding.
package detectors

import "github.com/privalens/privalens-engine/pkg/models"

// Detector is a pure value classifier. Detect returns zero or more findings
// for one cell value; table and column context is stamped on by the caller.
type Detector interface {
	// Type returns the detector identifier used in findings.
	Type() string

	// Detect inspects a single cell value.
	Detect(value string) []models.Finding
}

// All returns the default detector set.
func All() []Detector {
	return []Detector{
		NewBSNDetector(),
		NewIBANDetector(),
		NewKVKDetector(),
		NewPostalCodeDetector(),
		NewPhoneDetector(),
		NewEmailDetector(),
		NewCreditCardDetector(),
	}
}
