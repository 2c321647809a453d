package models

import "time"

// ScanMode is the caller-supplied preference for how thorough a scan
// should be. Smart lets the strategy selector decide from the schema.
type ScanMode string

const (
	ScanModeFast  ScanMode = "fast"
	ScanModeSmart ScanMode = "smart"
	ScanModeDeep  ScanMode = "deep"
)

// Valid reports whether the mode is one of the supported values.
func (m ScanMode) Valid() bool {
	switch m {
	case ScanModeFast, ScanModeSmart, ScanModeDeep:
		return true
	}
	return false
}

// StrategyKind identifies the sampling strategy family.
type StrategyKind string

const (
	StrategyComprehensive StrategyKind = "comprehensive"
	StrategyPriority      StrategyKind = "priority"
	StrategyPriorityDeep  StrategyKind = "priority_deep"
	StrategySampling      StrategyKind = "sampling"
)

// ScanStrategy bundles the sampling decisions made once per scan.
// Immutable value object.
type ScanStrategy struct {
	Kind         StrategyKind  `json:"kind"`
	TargetTables int           `json:"target_tables"`
	SampleSize   int           `json:"sample_size"` // rows sampled per table
	Workers      int           `json:"workers"`
	MaxScanTime  time.Duration `json:"max_scan_time"`
}
