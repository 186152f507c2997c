// Package handler contains the HTTP handlers of the dashboard API.
package handler

import (
	"net/url"

	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into input and runs its validate tags. The returned
// error is written by the error middleware.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
	}

	return c.Validate(input)
}

func channelParam(c echo.Context) (entity.Channel, error) {
	channel, ok := entity.ParseChannel(c.Param("channel"))
	if !ok {
		return "", domainerrors.ErrUnknownChannel.WithDetails(c.Param("channel"))
	}

	return channel, nil
}

func categoryParam(c echo.Context) (entity.Category, error) {
	category, ok := entity.ParseCategory(c.Param("category"))
	if !ok || category == entity.CategoryUnknown {
		return entity.CategoryUnknown, domainerrors.ErrUnknownCategory.WithDetails(c.Param("category"))
	}

	return category, nil
}

// pathValue returns a decoded path parameter; phone numbers arrive with %2B for the plus sign.
func pathValue(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}
