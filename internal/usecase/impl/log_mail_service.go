package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"vplmon/internal/domain/constants"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

// LogMailServiceParams holds dependencies for emailing a log panel, injected by Fx.
type LogMailServiceParams struct {
	fx.In

	Logger   *slog.Logger
	Terminal usecase.TerminalUsecase
	Email    service.EmailGateway
}

type logMailService struct {
	terminal usecase.TerminalUsecase
	email    service.EmailGateway
	logger   *slog.Logger
	now      func() time.Time
}

// NewLogMailService creates the "email this panel" operation.
func NewLogMailService(params LogMailServiceParams) usecase.LogMailUsecase {
	return &logMailService{
		terminal: params.Terminal,
		email:    params.Email,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (s *logMailService) EmailLogs(ctx context.Context, category entity.Category, toEmail string) error {
	if !slices.Contains(entity.PanelCategories, category) {
		return domainerrors.ErrUnknownCategory
	}

	to := entity.NormalizeEmail(toEmail)
	if !entity.IsValidEmail(to) {
		return domainerrors.ErrInvalidEmail.WithDetails(toEmail)
	}

	lines := make([]string, 0)
	for _, entry := range s.terminal.Entries(category) {
		lines = append(lines, entry.Text)
	}

	err := s.email.SendEmail(ctx, service.EmailRequest{
		ToEmail:   to,
		Subject:   fmt.Sprintf(constants.LogExportSubject, category.String()),
		Message:   strings.Join(lines, "\n"),
		Timestamp: s.now(),
	})
	if err != nil {
		s.logger.Warn("Failed to email log panel",
			slog.String("category", category.String()),
			slog.Any("error", err),
		)

		return domainerrors.NewGatewayError("email logs", err)
	}

	s.logger.Info("Log panel emailed", slog.String("category", category.String()), slog.Int("lines", len(lines)))

	return nil
}
