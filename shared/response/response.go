// Package response contains response utility functions and types
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents the standard API response structure
type Response struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Warning   string      `json:"warning,omitempty"`
	ErrorType string      `json:"error_type,omitempty"`
	Message   string      `json:"message,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

// SuccessResponse sends a successful JSON response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessResponseWithWarning sends a successful JSON response carrying a
// non-fatal warning, used when the save landed but the audit append failed.
func SuccessResponseWithWarning(c echo.Context, data interface{}, warning string) error {
	return c.JSON(http.StatusOK, Response{
		Status:  "success",
		Data:    data,
		Warning: warning,
	})
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, Response{
		Status:    "error",
		ErrorType: errorType,
		Message:   message,
	})
}

// ValidationErrorResponse sends an error JSON response listing every field
// violation collected by the validator.
func ValidationErrorResponse(c echo.Context, errors []string) error {
	return c.JSON(http.StatusBadRequest, Response{
		Status:    "error",
		ErrorType: "ValidationException",
		Message:   "Invalid strategy inputs",
		Errors:    errors,
	})
}
