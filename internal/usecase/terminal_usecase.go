package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// TerminalUsecase keeps the per-category log panels.
type TerminalUsecase interface {
	// Append adds a line to a panel. It never fails; panels are capped.
	Append(category entity.Category, text string) entity.LogEntry

	// Clear empties a panel and records a "Terminal cleared" line.
	Clear(category entity.Category)

	// Entries returns a snapshot of a panel, oldest first.
	Entries(category entity.Category) []entity.LogEntry

	// Export encodes the given panels (all panels when none are given).
	Export(format entity.ExportFormat, categories ...entity.Category) ([]byte, error)

	// PersistRemote copies entry to the audit log in the background.
	PersistRemote(entry entity.LogEntry)

	// Close waits for in-flight remote writes.
	Close(ctx context.Context) error
}
