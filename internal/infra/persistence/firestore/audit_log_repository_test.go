package firestore

import (
	"context"
	"testing"
	"time"

	"vplmon/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedDoc struct {
	collection string
	doc        map[string]any
}

type fakeWriter struct {
	docs    []recordedDoc
	failOn  string
	failErr error
}

func (w *fakeWriter) Add(_ context.Context, collection string, doc map[string]any) error {
	if collection == w.failOn {
		return w.failErr
	}
	w.docs = append(w.docs, recordedDoc{collection: collection, doc: doc})

	return nil
}

func TestAuditLog_AlertGoesToBothCollections(t *testing.T) {
	writer := &fakeWriter{}
	repo := &auditLogRepository{writer: writer}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(context.Background(), entity.LogEntry{Category: entity.CategoryAlertRed, Text: "Door open", Timestamp: at}))

	require.Len(t, writer.docs, 2)
	assert.Equal(t, "logs", writer.docs[0].collection)
	assert.Equal(t, "alerts", writer.docs[1].collection)
	assert.Equal(t, "red", writer.docs[0].doc["type"])
	assert.Equal(t, "Door open", writer.docs[0].doc["message"])
	assert.Equal(t, at, writer.docs[0].doc["clientTimestamp"])
	assert.Equal(t, firestore.ServerTimestamp, writer.docs[0].doc["timestamp"])
}

func TestAuditLog_NonAlertOnlyInLogs(t *testing.T) {
	writer := &fakeWriter{}
	repo := &auditLogRepository{writer: writer}

	require.NoError(t, repo.Append(context.Background(), entity.LogEntry{Category: entity.CategoryStatus, Text: "idle"}))

	require.Len(t, writer.docs, 1)
	assert.Equal(t, "logs", writer.docs[0].collection)
}

func TestAuditLog_WriteFailure(t *testing.T) {
	writer := &fakeWriter{failOn: "alerts", failErr: errors.New("permission denied")}
	repo := &auditLogRepository{writer: writer}

	err := repo.Append(context.Background(), entity.LogEntry{Category: entity.CategoryAlertAmber, Text: "Low battery"})

	assert.ErrorContains(t, err, "permission denied")
}

func TestNewAuditLogRepository_NilClient(t *testing.T) {
	assert.Nil(t, NewAuditLogRepository(nil))
}
