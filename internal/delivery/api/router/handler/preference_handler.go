package handler

import (
	"fmt"
	"net/http"

	"vplmon/internal/delivery/api/response"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChannelSettingsRequest toggles a channel and its severities. Omitted fields stay as they are.
type ChannelSettingsRequest struct {
	Enabled    *bool           `json:"enabled"`
	Severities map[string]bool `json:"severities"`
}

// RecipientRequest adds a phone number or email address, depending on the channel.
type RecipientRequest struct {
	Value string `json:"value" validate:"required"`
}

// PreferenceHandler manages notification preferences.
type PreferenceHandler struct {
	preferences usecase.PreferenceUsecase
	fanout      usecase.AlertFanoutUsecase
	notices     usecase.NoticeUsecase
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(preferences usecase.PreferenceUsecase, fanout usecase.AlertFanoutUsecase, notices usecase.NoticeUsecase) *PreferenceHandler {
	return &PreferenceHandler{
		preferences: preferences,
		fanout:      fanout,
		notices:     notices,
	}
}

func (h *PreferenceHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.preferences.Snapshot())
}

func (h *PreferenceHandler) SetChannel(c echo.Context) error {
	channel, err := channelParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input ChannelSettingsRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	settings := usecase.ChannelSettings{Enabled: input.Enabled}
	if len(input.Severities) > 0 {
		settings.Severities = make(map[entity.Severity]bool, len(input.Severities))
		for name, enabled := range input.Severities {
			severity, ok := entity.ParseSeverity(name)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown severity: "+name))
			}
			settings.Severities[severity] = enabled
		}
	}

	prefs, err := h.preferences.SetChannel(c.Request().Context(), channel, settings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.notices.Post(entity.NoticeSuccess, channel.Label()+" notification settings saved")

	return response.Success(c, http.StatusOK, prefs)
}

func (h *PreferenceHandler) AddRecipient(c echo.Context) error {
	channel, err := channelParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input RecipientRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	prefs, err := h.preferences.AddRecipient(c.Request().Context(), channel, input.Value)
	if err != nil {
		if domainerrors.IsValidation(err) {
			h.notices.Post(entity.NoticeWarning, err.Error())
		}

		return response.HandleAppError(c, err)
	}

	h.notices.Post(entity.NoticeSuccess, fmt.Sprintf("%s recipient added", channel.Label()))

	return response.Success(c, http.StatusCreated, prefs)
}

func (h *PreferenceHandler) RemoveRecipient(c echo.Context) error {
	channel, err := channelParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	prefs, err := h.preferences.RemoveRecipient(c.Request().Context(), channel, pathValue(c, "value"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.notices.Post(entity.NoticeInfo, fmt.Sprintf("%s recipient removed", channel.Label()))

	return response.Success(c, http.StatusOK, prefs)
}

// SendTest delivers a test alert on one channel and reports per-recipient results.
func (h *PreferenceHandler) SendTest(c echo.Context) error {
	channel, err := channelParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.fanout.SendTest(c.Request().Context(), channel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewChannelReport(report))
}
