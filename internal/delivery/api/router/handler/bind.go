package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes a JSON object body into dst and validates it.
// An empty body, null or {} is ErrNoDataProvided; unknown fields are rejected.
func bindStrict(c echo.Context, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		return errors.Wrap(err, "read request body")
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return domainerrors.ErrNoDataProvided
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object")
	}
	if len(fields) == 0 {
		return domainerrors.ErrNoDataProvided
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(decodeErrorDetails(err))
	}

	if err := c.Validate(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func decodeErrorDetails(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field + " must be of type " + typeErr.Type.String()
	}

	// json: unknown field "x"
	return strings.TrimPrefix(err.Error(), "json: ")
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return uint(id), nil
}
