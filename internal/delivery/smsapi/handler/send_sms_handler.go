// Package handler contains the send-sms function handler.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "vplmon/internal/delivery/context"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SendSMSRequest is the body of POST /send-sms.
type SendSMSRequest struct {
	Phones    []string `json:"phones"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
}

// SendSMSResponse is returned for every status code. Results holds provider SIDs on 200
// and per-phone results on 207 and on a batch where every phone failed.
type SendSMSResponse struct {
	Message string                        `json:"message"`
	Results any                           `json:"results,omitempty"`
	Details *service.ProviderConfigStatus `json:"details,omitempty"`
	Error   string                        `json:"error,omitempty"`
}

// PhoneResult is one phone's entry in a 207 or all-failed response.
type PhoneResult struct {
	Phone  string `json:"phone"`
	Status string `json:"status"`
	SID    string `json:"sid,omitempty"`
	Error  string `json:"error,omitempty"`
}

func phoneResults(results []entity.DeliveryResult) []PhoneResult {
	out := make([]PhoneResult, 0, len(results))
	for _, r := range results {
		out = append(out, PhoneResult{
			Phone:  r.Recipient,
			Status: string(r.Outcome),
			SID:    r.ProviderID,
			Error:  r.ErrorDetail,
		})
	}

	return out
}

// SendSMSHandlerParams holds dependencies for the send-sms handler, injected by Fx.
type SendSMSHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Dispatch usecase.SMSDispatchUsecase
	Provider service.SMSProvider
}

// SendSMSHandler implements the send-sms function contract.
type SendSMSHandler struct {
	logger   *slog.Logger
	dispatch usecase.SMSDispatchUsecase
	provider service.SMSProvider
}

// NewSendSMSHandler creates a SendSMSHandler.
func NewSendSMSHandler(params SendSMSHandlerParams) *SendSMSHandler {
	return &SendSMSHandler{
		logger:   params.Logger,
		dispatch: params.Dispatch,
		provider: params.Provider,
	}
}

// Handle answers every method so that anything but POST gets a 405 body.
func (h *SendSMSHandler) Handle(c echo.Context) (err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered in send-sms handler", slog.Any("error", errors.FromPanic(r)))
			err = c.JSON(http.StatusInternalServerError, SendSMSResponse{Message: "Error sending SMS", Error: "internal error"})
		}
	}()

	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, SendSMSResponse{Message: "Method Not Allowed"})
	}

	var req SendSMSRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		logger.Warn("Undecodable send-sms body", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, SendSMSResponse{Message: "Invalid request body"})
	}

	result, err := h.dispatch.Dispatch(c.Request().Context(), usecase.SMSDispatchRequest{
		Phones:    req.Phones,
		Message:   req.Message,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return h.writeError(c, logger, err)
	}

	switch result.Outcome {
	case entity.BatchAllSucceeded:
		sids := make([]string, 0, len(result.Results))
		for _, r := range result.Results {
			sids = append(sids, r.ProviderID)
		}

		return c.JSON(http.StatusOK, SendSMSResponse{Message: "SMS sent successfully", Results: sids})
	case entity.BatchPartial:
		return c.JSON(http.StatusMultiStatus, SendSMSResponse{Message: "Some messages failed to send", Results: phoneResults(result.Results)})
	default:
		return c.JSON(http.StatusInternalServerError, SendSMSResponse{Message: "Error sending SMS", Results: phoneResults(result.Results)})
	}
}

func (h *SendSMSHandler) writeError(c echo.Context, logger *slog.Logger, err error) error {
	if errors.Is(err, domainerrors.ErrProviderMisconfigured) {
		status := h.provider.Configured()
		logger.Error("Twilio configuration missing",
			slog.Bool("has_sid", status.HasSID),
			slog.Bool("has_token", status.HasToken),
			slog.Bool("has_phone", status.HasPhone),
		)

		return c.JSON(http.StatusInternalServerError, SendSMSResponse{
			Message: domainerrors.ErrProviderMisconfigured.Message(),
			Details: &status,
		})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return c.JSON(appErr.HTTPCode(), SendSMSResponse{Message: appErr.Message()})
	}

	logger.Error("Error sending SMS", slog.Any("error", err))

	return c.JSON(http.StatusInternalServerError, SendSMSResponse{Message: "Error sending SMS", Error: err.Error()})
}
