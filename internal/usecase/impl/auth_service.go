package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"vplmon/config"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for the operator login gate, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
	Tokens service.TokenService
}

type authService struct {
	operator *config.OperatorConfig
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService creates the operator login gate.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		operator: params.Config.Operator,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

func (s *authService) Login(_ context.Context, username, password string) (*usecase.LoginResult, error) {
	if s.operator == nil || s.operator.Username == "" || s.operator.PasswordHash == "" {
		s.logger.Warn("Login attempted but no operator account is configured")

		return nil, domainerrors.ErrInvalidCredentials
	}

	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(s.operator.Username)) == 1
	validPassword := s.hasher.Check(password, s.operator.PasswordHash)
	if !sameUser || !validPassword {
		s.logger.Warn("Operator login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(s.operator.Username)
	if err != nil {
		return nil, errors.Wrap(err, "generate access token")
	}

	s.logger.Info("Operator logged in", slog.String("username", username))

	return &usecase.LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
