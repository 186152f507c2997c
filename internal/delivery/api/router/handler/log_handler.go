package handler

import (
	"net/http"
	"strings"
	"time"

	"vplmon/internal/delivery/api/response"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

const exportTimeLayout = "20060102-150405"

var exportContentTypes = map[entity.ExportFormat]string{
	entity.ExportFormatCSV:  "text/csv; charset=utf-8",
	entity.ExportFormatText: echo.MIMETextPlainCharsetUTF8,
}

// EmailLogsRequest names the recipient of a panel export.
type EmailLogsRequest struct {
	Email string `json:"email" validate:"required,recipient_email"`
}

// LogHandler serves the terminal panels.
type LogHandler struct {
	terminal usecase.TerminalUsecase
	mail     usecase.LogMailUsecase
	notices  usecase.NoticeUsecase
	now      func() time.Time
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(terminal usecase.TerminalUsecase, mail usecase.LogMailUsecase, notices usecase.NoticeUsecase) *LogHandler {
	return &LogHandler{
		terminal: terminal,
		mail:     mail,
		notices:  notices,
		now:      time.Now,
	}
}

// List returns a panel oldest first.
func (h *LogHandler) List(c echo.Context) error {
	category, err := categoryParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"category": category.String(),
		"entries":  h.terminal.Entries(category),
	})
}

func (h *LogHandler) Clear(c echo.Context) error {
	category, err := categoryParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.terminal.Clear(category)

	return c.NoContent(http.StatusNoContent)
}

// Export downloads panels as csv or txt. ?categories=red,amber narrows the export.
func (h *LogHandler) Export(c echo.Context) error {
	format := entity.ExportFormat(strings.ToLower(c.QueryParam("format")))
	if format == "" {
		format = entity.ExportFormatCSV
	}
	contentType, ok := exportContentTypes[format]
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("format must be csv or txt"))
	}

	var categories []entity.Category
	if raw := c.QueryParam("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			category, ok := entity.ParseCategory(name)
			if !ok || category == entity.CategoryUnknown {
				return response.HandleAppError(c, domainerrors.ErrUnknownCategory.WithDetails(name))
			}
			categories = append(categories, category)
		}
	}

	body, err := h.terminal.Export(format, categories...)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "vpl-logs-" + h.now().Format(exportTimeLayout) + "." + string(format)

	return response.Attachment(c, filename, contentType, body)
}

// Email sends one panel to the given address.
func (h *LogHandler) Email(c echo.Context) error {
	category, err := categoryParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input EmailLogsRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.mail.EmailLogs(c.Request().Context(), category, input.Email); err != nil {
		h.notices.Post(entity.NoticeError, "Failed to email "+category.Label()+" logs")

		return response.HandleAppError(c, err)
	}

	h.notices.Post(entity.NoticeSuccess, category.Label()+" logs sent to "+input.Email)

	return response.Success(c, http.StatusOK, map[string]string{
		"category": category.String(),
		"email":    input.Email,
	})
}
