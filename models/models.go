package models

import (
	"encoding/json"
	"time"
)

// ScanRecord represents a stored classification outcome with source metadata.
// The engine itself persists nothing; records are written by the CLI glue.
type ScanRecord struct {
	ID          int64           `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	SourcePath  string          `json:"sourcePath,omitempty"`
	ScanType    string          `json:"scanType"`
	Confidence  float64         `json:"confidence"`
	Description string          `json:"description,omitempty"`
	Resolution  string          `json:"resolution,omitempty"`
	LatencyMs   float64         `json:"latencyMs"`
	AllScores   json.RawMessage `json:"allScores"`
	Features    json.RawMessage `json:"features,omitempty"`
}
