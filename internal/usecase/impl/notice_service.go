package impl

import (
	"sync"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	"vplmon/internal/usecase"

	"github.com/google/uuid"
)

const maxNotices = 20

type noticeService struct {
	mu      sync.Mutex
	notices []entity.Notice
	ttl     time.Duration
	now     func() time.Time
}

// NewNoticeService keeps operator banners until they expire.
func NewNoticeService(cfg *config.Config) usecase.NoticeUsecase {
	return &noticeService{
		ttl: cfg.Notices.TTL,
		now: time.Now,
	}
}

func (s *noticeService) Post(level entity.NoticeLevel, text string) entity.Notice {
	now := s.now()
	notice := entity.Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = append(s.prune(now), notice)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}

	return notice
}

func (s *noticeService) Active() []entity.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = s.prune(s.now())

	out := make([]entity.Notice, len(s.notices))
	copy(out, s.notices)

	return out
}

func (s *noticeService) prune(now time.Time) []entity.Notice {
	kept := s.notices[:0]
	for _, n := range s.notices {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}

	return kept
}
