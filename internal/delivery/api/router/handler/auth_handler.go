package handler

import (
	"log/slog"
	"net/http"

	"vplmon/internal/delivery/api/response"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the operator login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds the operator login endpoint.
type AuthHandler struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login exchanges operator credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		h.logger.Info("Operator login rejected", slog.String("username", input.Username))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
