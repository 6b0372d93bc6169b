package handler

import (
	"strconv"

	domainerrors "crm/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(map[string]string{name: raw})
	}

	return id, nil
}

// bindBody decodes the JSON body into dst. Decoding failures are reported as INVALID_INPUT.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return domainerrors.ErrInvalidInput
	}

	return nil
}
