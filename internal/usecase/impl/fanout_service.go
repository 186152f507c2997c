package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/constants"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

const testAlertText = "This is a test notification from the VPL monitoring dashboard"

// FanoutServiceParams holds dependencies for the alert fan-out, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Preferences usecase.PreferenceUsecase
	SMS         service.SMSGateway
	Email       service.EmailGateway
	Terminal    usecase.TerminalUsecase
	Notices     usecase.NoticeUsecase
}

type fanoutService struct {
	timeout     time.Duration
	logger      *slog.Logger
	preferences usecase.PreferenceUsecase
	sms         service.SMSGateway
	email       service.EmailGateway
	terminal    usecase.TerminalUsecase
	notices     usecase.NoticeUsecase
	now         func() time.Time

	inflight sync.WaitGroup
}

// NewFanoutService creates the alert fan-out coordinator.
func NewFanoutService(params FanoutServiceParams) usecase.AlertFanoutUsecase {
	return &fanoutService{
		timeout:     params.Config.Fanout.Timeout,
		logger:      params.Logger,
		preferences: params.Preferences,
		sms:         params.SMS,
		email:       params.Email,
		terminal:    params.Terminal,
		notices:     params.Notices,
		now:         time.Now,
	}
}

func (s *fanoutService) OnAlert(ctx context.Context, msg *entity.ClassifiedMessage) {
	if msg == nil {
		return
	}
	severity, ok := msg.Category.Severity()
	if !ok {
		return
	}

	prefs := s.preferences.Snapshot()
	text := fmt.Sprintf("%s Alert: %s", severity.Upper(), msg.DisplayText)
	timestamp := s.now()

	for _, channel := range entity.Channels {
		if !prefs.Allows(channel, severity) {
			continue
		}

		recipients := prefs.RecipientsFor(channel)
		if len(recipients) == 0 {
			s.logger.Debug("No recipients configured, skipping alert delivery",
				slog.String("channel", string(channel)),
				slog.String("severity", string(severity)),
			)

			continue
		}

		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			s.deliver(context.WithoutCancel(ctx), channel, recipients, text, timestamp)
		}()
	}
}

func (s *fanoutService) SendTest(ctx context.Context, channel entity.Channel) (*usecase.ChannelReport, error) {
	prefs := s.preferences.Snapshot()
	if _, ok := prefs.ChannelEnabled[channel]; !ok {
		return nil, domainerrors.ErrUnknownChannel
	}
	if !prefs.ChannelEnabled[channel] {
		return nil, domainerrors.ErrChannelDisabled
	}

	recipients := prefs.RecipientsFor(channel)
	if len(recipients) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	s.inflight.Add(1)
	defer s.inflight.Done()

	return s.deliver(ctx, channel, recipients, "TEST Alert: "+testAlertText, s.now()), nil
}

func (s *fanoutService) Wait() {
	s.inflight.Wait()
}

// deliver never panics; a failure in one channel is reported and contained.
func (s *fanoutService) deliver(ctx context.Context, channel entity.Channel, recipients []string, text string, timestamp time.Time) (report *usecase.ChannelReport) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r)
			s.logger.Error("Alert delivery panicked", slog.String("channel", string(channel)), slog.Any("error", err))
			report = buildReport(channel, failAll(channel, recipients, err))
			s.announce(report)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var results []entity.DeliveryResult
	switch channel {
	case entity.ChannelSMS:
		results = s.sendSMS(ctx, recipients, text, timestamp)
	case entity.ChannelEmail:
		results = s.sendEmail(ctx, recipients, text, timestamp)
	}

	report = buildReport(channel, results)
	s.announce(report)

	return report
}

func (s *fanoutService) sendSMS(ctx context.Context, phones []string, text string, timestamp time.Time) []entity.DeliveryResult {
	results, err := withinDeadline(ctx, func() ([]entity.DeliveryResult, error) {
		return s.sms.SendSMS(ctx, phones, text, timestamp)
	})
	if err != nil {
		return failAll(entity.ChannelSMS, phones, domainerrors.NewGatewayError("send sms", err))
	}

	byPhone := make(map[string]entity.DeliveryResult, len(results))
	for _, r := range results {
		byPhone[r.Recipient] = r
	}

	// The gateway may omit phones it never attempted; those count as failures.
	out := make([]entity.DeliveryResult, 0, len(phones))
	for _, phone := range phones {
		r, ok := byPhone[phone]
		if !ok {
			r = entity.DeliveryResult{Recipient: phone, Outcome: entity.OutcomeFailure, ErrorDetail: "no result returned"}
		}
		r.Channel = entity.ChannelSMS
		out = append(out, r)
	}

	return out
}

func (s *fanoutService) sendEmail(ctx context.Context, emails []string, text string, timestamp time.Time) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, 0, len(emails))
	for _, email := range emails {
		result := entity.DeliveryResult{Recipient: email, Channel: entity.ChannelEmail, Outcome: entity.OutcomeSuccess}

		_, err := withinDeadline(ctx, func() (struct{}, error) {
			return struct{}{}, s.email.SendEmail(ctx, service.EmailRequest{
				ToEmail:   email,
				Subject:   constants.AlertEmailSubject,
				Message:   text,
				Timestamp: timestamp,
			})
		})
		if err != nil {
			result.Outcome = entity.OutcomeFailure
			result.ErrorDetail = err.Error()
		}
		results = append(results, result)
	}

	return results
}

// withinDeadline returns when call does or when ctx ends, whichever comes first, so a gateway
// that ignores ctx still counts as failed once the fan-out timeout passes.
func withinDeadline[T any](ctx context.Context, call func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, errors.Wrap(err, "gateway not called")
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: errors.FromPanic(r)}
			}
		}()

		value, err := call()
		done <- outcome{value: value, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		return zero, errors.Wrap(ctx.Err(), "gateway did not respond in time")
	}
}

func (s *fanoutService) announce(report *usecase.ChannelReport) {
	label := report.Channel.Label()

	var (
		level entity.NoticeLevel
		text  string
	)
	switch report.Outcome {
	case entity.BatchAllSucceeded:
		level = entity.NoticeSuccess
		text = fmt.Sprintf("%s alert sent to %d recipient(s)", label, report.Succeeded)
	case entity.BatchPartial:
		level = entity.NoticeWarning
		text = fmt.Sprintf("%s alert partially delivered: %d sent, %d failed", label, report.Succeeded, report.Failed)
	default:
		level = entity.NoticeError
		text = fmt.Sprintf("%s alert failed for %d recipient(s): %s", label, report.Failed, firstError(report.Results))
	}

	s.notices.Post(level, text)
	s.terminal.Append(entity.CategoryGeneral, text)

	attrs := []any{
		slog.String("channel", string(report.Channel)),
		slog.String("outcome", string(report.Outcome)),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
	}
	if report.Outcome == entity.BatchAllSucceeded {
		s.logger.Info("Alert delivered", attrs...)
	} else {
		s.logger.Warn("Alert delivery incomplete", attrs...)
	}
}

func buildReport(channel entity.Channel, results []entity.DeliveryResult) *usecase.ChannelReport {
	succeeded, failed := entity.CountOutcomes(results)

	return &usecase.ChannelReport{
		Channel:   channel,
		Outcome:   entity.AggregateOutcome(results),
		Succeeded: succeeded,
		Failed:    failed,
		Results:   results,
	}
}

func failAll(channel entity.Channel, recipients []string, err error) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, 0, len(recipients))
	for _, r := range recipients {
		results = append(results, entity.DeliveryResult{
			Recipient:   r,
			Channel:     channel,
			Outcome:     entity.OutcomeFailure,
			ErrorDetail: err.Error(),
		})
	}

	return results
}

func firstError(results []entity.DeliveryResult) string {
	for _, r := range results {
		if r.ErrorDetail != "" {
			return r.ErrorDetail
		}
	}

	return "unknown error"
}
