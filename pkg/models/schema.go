package models

// RiskLevel classifies how likely a schema or finding context is to hold
// sensitive personal data.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// MaxPriorityScore is the hard cap on table priority scores.
const MaxPriorityScore = 3.5

// ColumnDescriptor describes one column (or inferred field, for document and
// key-value stores) of a discovered table.
type ColumnDescriptor struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

// TableDescriptor describes one table, collection or keyspace discovered
// during schema introspection. PriorityScore is derived once by the priority
// scorer and read-only afterwards.
type TableDescriptor struct {
	SchemaName    string             `json:"schema_name,omitempty"`
	Name          string             `json:"name"`
	EstimatedRows int64              `json:"estimated_rows"`
	Columns       []ColumnDescriptor `json:"columns"`
	PriorityScore float64            `json:"priority_score"` // 0.0 - 3.5
}

// QualifiedName returns "schema.table" or just the table name when no schema
// applies (sqlite, mongodb collections, redis keyspaces).
func (t TableDescriptor) QualifiedName() string {
	if t.SchemaName == "" {
		return t.Name
	}
	return t.SchemaName + "." + t.Name
}

// PriorityDistribution counts tables per priority bucket.
type PriorityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SchemaAnalysis is the database-wide view computed once per scan and
// consumed by the strategy selector.
type SchemaAnalysis struct {
	Tables        []TableDescriptor    `json:"tables"`
	TotalTables   int                  `json:"total_tables"`
	EstimatedRows int64                `json:"estimated_rows"`
	Distribution  PriorityDistribution `json:"priority_distribution"`
	RiskScore     float64              `json:"risk_score"`
	RiskLevel     RiskLevel            `json:"risk_level"`
}
