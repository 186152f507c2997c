package entity

import "time"

// LogEntry is one line in a terminal panel.
type LogEntry struct {
	Category  Category  `json:"-"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ExportFormat selects the log export encoding.
type ExportFormat string

const (
	ExportFormatText ExportFormat = "txt"
	ExportFormatCSV  ExportFormat = "csv"
)
