package detectors

import (
	"regexp"
	"strings"

	"github.com/privalens/privalens-engine/pkg/logging"
	"github.com/privalens/privalens-engine/pkg/models"
)

// RegulationPaymentCard tags findings covered by payment card industry rules.
const RegulationPaymentCard = "PCI DSS"

var creditCardPattern = regexp.MustCompile(`\b\d{4}(?:[\s-]?\d{4}){2,3}\b`)

// CreditCardDetector finds payment card numbers and validates them with the
// Luhn checksum.
type CreditCardDetector struct{}

// NewCreditCardDetector returns the payment card detector.
func NewCreditCardDetector() *CreditCardDetector {
	return &CreditCardDetector{}
}

// Type returns the detector identifier.
func (d *CreditCardDetector) Type() string {
	return "credit_card"
}

// Detect reports Luhn-valid card number candidates.
func (d *CreditCardDetector) Detect(value string) []models.Finding {
	var findings []models.Finding
	for _, match := range creditCardPattern.FindAllString(value, -1) {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, match)
		if !validLuhn(digits) {
			continue
		}
		findings = append(findings, models.Finding{
			DetectorType: d.Type(),
			MatchedValue: logging.MaskValue(match),
			Confidence:   0.95,
			Severity:     models.SeverityHigh,
			Regulation:   RegulationPaymentCard,
		})
	}
	return findings
}

// validLuhn applies the Luhn checksum, doubling every second digit from the
// right.
func validLuhn(digits string) bool {
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
