package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// MonitorUsecase is the monitoring session: it consumes the transport and drives every other component.
type MonitorUsecase interface {
	// Run consumes transport events until the stream closes or ctx is done.
	Run(ctx context.Context) error

	// SendCommand publishes an operator command to the lift.
	SendCommand(ctx context.Context, command string) error

	Status() entity.SessionStatus
}
