package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// SMSDispatchRequest is the body of the send-sms function.
type SMSDispatchRequest struct {
	Phones    []string
	Message   string
	Timestamp string
}

// SMSDispatchResult holds one result per requested phone, in request order.
type SMSDispatchResult struct {
	Outcome entity.BatchOutcome
	Results []entity.DeliveryResult
}

// SMSDispatchUsecase sends one message to many phones through the carrier.
type SMSDispatchUsecase interface {
	Dispatch(ctx context.Context, req SMSDispatchRequest) (*SMSDispatchResult, error)
}
