package impl

import (
	"testing"
	"time"

	"vplmon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeService_ExpiresNotices(t *testing.T) {
	cfg := newTestConfig()
	cfg.Notices.TTL = 3 * time.Second
	svc := NewNoticeService(cfg).(*noticeService)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	first := svc.Post(entity.NoticeSuccess, "SMS sent to 2 recipients")
	clock = clock.Add(2 * time.Second)
	svc.Post(entity.NoticeError, "Email failed")

	active := svc.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)

	clock = clock.Add(2 * time.Second)
	active = svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Email failed", active[0].Text)

	clock = clock.Add(time.Minute)
	assert.Empty(t, svc.Active())
}
