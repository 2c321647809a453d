package models

// Severity ranks the impact of a finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Finding is one detected instance of sensitive data. MatchedValue is always
// a masked representation, never the raw cell content.
type Finding struct {
	DetectorType string   `json:"detector_type"`
	TableName    string   `json:"table_name,omitempty"`
	ColumnName   string   `json:"column_name,omitempty"`
	MatchedValue string   `json:"matched_value"`
	Confidence   float64  `json:"confidence"` // 0.0 - 1.0
	Severity     Severity `json:"severity"`
	Regulation   string   `json:"regulation,omitempty"` // e.g. "GDPR Art. 9 (special category data)"
}
