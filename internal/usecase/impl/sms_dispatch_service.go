package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultDispatchConcurrency = 4

// SMSDispatchServiceParams holds dependencies for the send-sms function, injected by Fx.
type SMSDispatchServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Provider service.SMSProvider
}

type smsDispatchService struct {
	concurrency int
	provider    service.SMSProvider
	logger      *slog.Logger
	now         func() time.Time
}

// NewSMSDispatchService creates the carrier fan-out behind POST /send-sms.
func NewSMSDispatchService(params SMSDispatchServiceParams) usecase.SMSDispatchUsecase {
	concurrency := params.Config.SMSGateway.Concurrency
	if concurrency <= 0 {
		concurrency = defaultDispatchConcurrency
	}

	return &smsDispatchService{
		concurrency: concurrency,
		provider:    params.Provider,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *smsDispatchService) Dispatch(ctx context.Context, req usecase.SMSDispatchRequest) (*usecase.SMSDispatchResult, error) {
	if len(req.Phones) == 0 {
		return nil, domainerrors.ErrMissingPhones
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, domainerrors.ErrMissingMessage
	}

	configured := s.provider.Configured()
	s.logger.Info("Received send-sms request",
		slog.Int("phones", len(req.Phones)),
		slog.Bool("has_sid", configured.HasSID),
		slog.Bool("has_token", configured.HasToken),
		slog.Bool("has_phone", configured.HasPhone),
	)
	if !configured.Ready() {
		return nil, domainerrors.ErrProviderMisconfigured
	}

	timestamp := req.Timestamp
	if strings.TrimSpace(timestamp) == "" {
		timestamp = s.now().UTC().Format(time.RFC3339)
	}
	body := req.Message + "\nTimestamp: " + timestamp

	results := make([]entity.DeliveryResult, len(req.Phones))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, raw := range req.Phones {
		g.Go(func() error {
			results[i] = s.sendOne(ctx, raw, body)

			return nil
		})
	}
	_ = g.Wait()

	succeeded, failed := entity.CountOutcomes(results)
	outcome := entity.AggregateOutcome(results)

	attrs := []any{
		slog.String("outcome", string(outcome)),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
	}
	if outcome == entity.BatchAllSucceeded {
		s.logger.Info("SMS sent successfully", attrs...)
	} else {
		s.logger.Warn("SMS dispatch incomplete", attrs...)
	}

	return &usecase.SMSDispatchResult{Outcome: outcome, Results: results}, nil
}

// sendOne never panics; each phone gets exactly one result.
func (s *smsDispatchService) sendOne(ctx context.Context, raw, body string) (result entity.DeliveryResult) {
	result = entity.DeliveryResult{Recipient: raw, Channel: entity.ChannelSMS, Outcome: entity.OutcomeFailure}

	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r)
			s.logger.Error("SMS provider panicked", slog.Any("error", err))
			result.Outcome = entity.OutcomeFailure
			result.ProviderID = ""
			result.ErrorDetail = err.Error()
		}
	}()

	phone := entity.NormalizePhone(raw)
	if !entity.IsValidPhone(phone) {
		result.ErrorDetail = domainerrors.ErrInvalidPhone.Error()

		return result
	}

	sid, err := s.provider.Send(ctx, phone, body)
	if err != nil {
		s.logger.Warn("Failed to send SMS", slog.Any("error", domainerrors.NewGatewayError("send sms", err)))
		result.ErrorDetail = err.Error()

		return result
	}

	result.Outcome = entity.OutcomeSuccess
	result.ProviderID = sid

	return result
}
