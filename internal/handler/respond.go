package handler

import (
	"net/http"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/labstack/echo/v4"
)

// errorBody is the JSON shape every failed request returns.
type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusFor maps domain error codes to HTTP statuses.
func statusFor(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a domain error. Field-level validation errors carry
// their field map; internal details never leak past the generic message.
func respondError(c echo.Context, err error) error {
	if fields := domain.GetValidationFields(err); fields != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error:  "La solicitud tiene campos inválidos",
			Code:   domain.EINVALID,
			Fields: fields,
		})
	}

	code := domain.ErrorCode(err)
	return c.JSON(statusFor(code), errorBody{
		Error: domain.ErrorMessage(err),
		Code:  code,
	})
}
