package handler

import (
	"net/http"

	"vplmon/internal/delivery/api/response"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NoticeHandler lists the transient operator notices.
type NoticeHandler struct {
	notices usecase.NoticeUsecase
}

func NewNoticeHandler(notices usecase.NoticeUsecase) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

func (h *NoticeHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notices.Active())
}
