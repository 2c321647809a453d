package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanStats are the per-table bookkeeping counters aggregated by the
// parallel scan engine.
type ScanStats struct {
	TablesScanned int   `json:"tables_scanned"`
	TablesSkipped int   `json:"tables_skipped"`
	RowsAnalyzed  int64 `json:"rows_analyzed"`
}

// ScanResult is the terminal artifact of one scan invocation. It is returned
// once and never mutated afterwards.
type ScanResult struct {
	ScanID           uuid.UUID    `json:"scan_id"`
	Findings         []Finding    `json:"findings"`
	TablesDiscovered int          `json:"tables_discovered"`
	TablesScanned    int          `json:"tables_scanned"`
	TablesSkipped    int          `json:"tables_skipped"`
	RowsAnalyzed     int64        `json:"rows_analyzed"`
	ElapsedSeconds   float64      `json:"elapsed_seconds"`
	CoveragePercent  float64      `json:"coverage_percent"`
	RiskLevel        RiskLevel    `json:"risk_level"`
	Strategy         ScanStrategy `json:"strategy"`
	StartedAt        time.Time    `json:"started_at"`
}

// Coverage computes the share of discovered tables that were scanned.
// Returns 0 when nothing was discovered.
func Coverage(scanned, discovered int) float64 {
	if discovered == 0 {
		return 0
	}
	return 100 * float64(scanned) / float64(discovered)
}
