package usecase

import "vplmon/internal/domain/entity"

// NoticeUsecase holds transient operator banners.
type NoticeUsecase interface {
	Post(level entity.NoticeLevel, text string) entity.Notice

	// Active returns the notices that have not expired yet.
	Active() []entity.Notice
}
