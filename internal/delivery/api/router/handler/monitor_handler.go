package handler

import (
	"log/slog"
	"net/http"

	"vplmon/internal/delivery/api/response"
	deliverycontext "vplmon/internal/delivery/context"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CommandRequest is an operator command for the lift, e.g. UP, DOWN, STOP, BRAKE or RELEASE.
type CommandRequest struct {
	Command string `json:"command" validate:"required"`
}

// MonitorHandler exposes the session status and operator commands.
type MonitorHandler struct {
	monitor usecase.MonitorUsecase
}

// NewMonitorHandler creates a MonitorHandler.
func NewMonitorHandler(monitor usecase.MonitorUsecase) *MonitorHandler {
	return &MonitorHandler{monitor: monitor}
}

func (h *MonitorHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.monitor.Status())
}

// SendCommand publishes the command; the echo shows up in the command panel.
func (h *MonitorHandler) SendCommand(c echo.Context) error {
	var input CommandRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.monitor.SendCommand(ctx, input.Command); err != nil {
		return response.HandleAppError(c, err)
	}

	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		logger.Info("Operator command sent",
			slog.String("command", input.Command),
			slog.String("operator", deliverycontext.GetOperatorFromContext(ctx)),
		)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"command": input.Command})
}
