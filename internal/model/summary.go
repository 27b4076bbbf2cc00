package model

import "time"

// RunIDKey is the Parquet key/value metadata entry holding the run id.
const RunIDKey = "schedh.run_id"

// RunSummary captures metrics from a single extraction run.
type RunSummary struct {
	RunID          string
	InputDir       string
	Batches        int
	BatchesUnknown int // batch directories with no registered provenance
	FilesSeen      int64
	Extracted      int64
	Skipped        int64 // filings without a Schedule H
	Failed         int64
	Duplicates     int64 // extracted filings whose content matched an earlier file
	RowsWritten    int64
	RowsLoaded     int64
	DurationScan   time.Duration
	DurationWrite  time.Duration
	DurationLoad   time.Duration
	DurationTotal  time.Duration
}
