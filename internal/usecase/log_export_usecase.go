package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// LogMailUsecase emails a panel export to a recipient.
type LogMailUsecase interface {
	EmailLogs(ctx context.Context, category entity.Category, toEmail string) error
}
