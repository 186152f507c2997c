package repository

import (
	"context"

	"vplmon/internal/domain/entity"
)

// AuditLogRepository is the remote, append-only copy of the terminal logs.
type AuditLogRepository interface {
	// Append stores one log entry. The local log never depends on its success.
	Append(ctx context.Context, entry entity.LogEntry) error
}
