// Package middleware holds the dashboard API's error handler and operator authentication.
package middleware

import (
	"log/slog"
	"strings"

	"vplmon/internal/delivery/api/response"
	deliverycontext "vplmon/internal/delivery/context"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates operator access tokens.
type AuthMiddleware struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate requires a valid Bearer token and stores its operator on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil || claims == nil || claims.Operator == "" {
			m.logger.Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		deliverycontext.SetOperator(c, claims.Operator)

		return next(c)
	}
}
