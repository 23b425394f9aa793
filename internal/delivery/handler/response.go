package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"thelist/internal/application/services"
	"thelist/internal/domain/errs"
)

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func sendJSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		Status: "success",
		Code:   statusCode,
		Data:   data,
	})
}

func sendJSONError(c echo.Context, statusCode int, message string, violations []string) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Code:    statusCode,
		Errors:  violations,
	})
}

// sendServiceError maps the domain error taxonomy onto HTTP status codes.
// Validation errors list every violated rule, not just the first.
func sendServiceError(c echo.Context, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return sendJSONError(c, http.StatusBadRequest, "validation failed", ve.Violations)
	}

	var ce *errs.ConflictError
	if errors.As(err, &ce) {
		return sendJSONError(c, http.StatusBadRequest, "validation failed", []string{ce.Error()})
	}

	var nfe *errs.NotFoundError
	if errors.As(err, &nfe) {
		return sendJSONError(c, http.StatusNotFound, nfe.Error(), nil)
	}

	if errors.Is(err, services.ErrInvalidCredentials) {
		return sendJSONError(c, http.StatusUnauthorized, err.Error(), nil)
	}

	if errors.Is(err, services.ErrTooManyRequests) {
		return sendJSONError(c, http.StatusTooManyRequests, err.Error(), nil)
	}

	c.Logger().Error(err)
	return sendJSONError(c, http.StatusInternalServerError, "an unexpected error occurred", nil)
}
