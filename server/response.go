package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON reply except GeoJSON.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries a machine-readable error code.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Error codes.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidation       = "VALIDATION_ERROR"
	CodePointNotFound    = "POINT_NOT_FOUND"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInternal         = "INTERNAL_ERROR"
)

func success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func failure(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

func badRequest(c echo.Context, errorCode, message string) error {
	return failure(c, http.StatusBadRequest, errorCode, message, "")
}

func notFound(c echo.Context, errorCode, message string) error {
	return failure(c, http.StatusNotFound, errorCode, message, "")
}

func internalError(c echo.Context) error {
	return failure(c, http.StatusInternalServerError, CodeInternal, "", "")
}
