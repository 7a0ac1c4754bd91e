package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message,omitempty"`
	Data         interface{}          `json:"data,omitempty"`
	Error        string               `json:"error,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error"`
	Code         int                  `json:"code,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NotifyResponse sends a success response carrying a user-facing notification
func NotifyResponse(c echo.Context, statusCode int, message string, data interface{}, n *models.Notification) error {
	return c.JSON(statusCode, Response{
		Success:      true,
		Message:      message,
		Data:         data,
		Notification: n,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return NotificationErrorResponse(c, statusCode, errorMessage, nil)
}

// NotificationErrorResponse sends an error response with the notification the
// client should show
func NotificationErrorResponse(c echo.Context, statusCode int, errorMessage string, n *models.Notification) error {
	return c.JSON(statusCode, ErrorResponse{
		Success:      false,
		Error:        errorMessage,
		Code:         statusCode,
		Notification: n,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}
