package datasource

// TableInfo identifies a discovered table, collection or keyspace with its
// estimated row count from catalog statistics.
type TableInfo struct {
	SchemaName string `json:"schema_name,omitempty"`
	TableName  string `json:"table_name"`
	RowCount   int64  `json:"row_count"`
}

// ColumnInfo describes a column with database-agnostic type information.
// For document and key-value stores the type is inferred from sampled values.
type ColumnInfo struct {
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
}
