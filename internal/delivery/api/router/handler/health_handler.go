package handler

import (
	"net/http"

	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness together with the broker connection state.
type HealthHandler struct {
	monitor usecase.MonitorUsecase
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(monitor usecase.MonitorUsecase) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

// Health always answers 200 while the process is serving.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"connection": h.monitor.Status().Connection,
	})
}
