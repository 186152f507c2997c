package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// ChannelReport summarises one channel's delivery.
type ChannelReport struct {
	Channel   entity.Channel
	Outcome   entity.BatchOutcome
	Succeeded int
	Failed    int
	Results   []entity.DeliveryResult
}

// AlertFanoutUsecase delivers alerts to the configured recipients.
type AlertFanoutUsecase interface {
	// OnAlert starts delivery for an alert and returns immediately.
	OnAlert(ctx context.Context, msg *entity.ClassifiedMessage)

	// SendTest delivers a test alert on one channel and waits for the result.
	SendTest(ctx context.Context, channel entity.Channel) (*ChannelReport, error)

	// Wait blocks until every started delivery has finished.
	Wait()
}
