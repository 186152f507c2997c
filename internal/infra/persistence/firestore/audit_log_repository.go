// Package firestore stores the operator-visible log lines in Cloud Firestore.
package firestore

import (
	"context"

	"vplmon/internal/domain/constants"
	"vplmon/internal/domain/entity"
	"vplmon/internal/domain/repository"
	"vplmon/internal/errors"

	"cloud.google.com/go/firestore"
)

// documentWriter adds one document to a collection.
type documentWriter interface {
	Add(ctx context.Context, collection string, doc map[string]any) error
}

type clientWriter struct {
	client *firestore.Client
}

func (w clientWriter) Add(ctx context.Context, collection string, doc map[string]any) error {
	_, _, err := w.client.Collection(collection).Add(ctx, doc)

	return err
}

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	writer documentWriter
}

// NewAuditLogRepository returns nil when no Firestore client is available.
func NewAuditLogRepository(client *firestore.Client) repository.AuditLogRepository {
	if client == nil {
		return nil
	}

	return &auditLogRepository{writer: clientWriter{client: client}}
}

// Append writes entry to the logs collection. Alerts are also written to the alerts collection.
func (repo *auditLogRepository) Append(ctx context.Context, entry entity.LogEntry) error {
	doc := map[string]any{
		"type":            entry.Category.String(),
		"message":         entry.Text,
		"clientTimestamp": entry.Timestamp,
		"timestamp":       firestore.ServerTimestamp,
	}

	if err := repo.writer.Add(ctx, constants.CollectionLogs, doc); err != nil {
		return errors.Wrap(err, "failed to add log document")
	}

	if !entry.Category.IsAlert() {
		return nil
	}

	if err := repo.writer.Add(ctx, constants.CollectionAlerts, doc); err != nil {
		return errors.Wrap(err, "failed to add alert document")
	}

	return nil
}
