package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/stellarinsights/stellarinsights/api/internal/pkg/errors"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorResponse creates a standardized JSON error response.
func errorResponse(c *fiber.Ctx, statusCode int, message string) error {
	errorName := "Error"
	switch statusCode {
	case fiber.StatusBadRequest:
		errorName = "Bad Request"
	case fiber.StatusNotFound:
		errorName = "Not Found"
	case fiber.StatusConflict:
		errorName = "Conflict"
	case fiber.StatusInternalServerError:
		errorName = "Internal Server Error"
	}

	return c.Status(statusCode).JSON(ErrorResponse{
		Error:   errorName,
		Message: message,
	})
}

// respondError maps a repository error onto an HTTP response.
// Caller-recoverable kinds carry their own message; 5xx kinds are
// logged with full detail and answered with a fixed generic body so
// no internal diagnosis ever reaches the caller.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		status := appErr.StatusCode
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("action", action),
				zap.String("code", appErr.Code),
				zap.Error(err))
			return errorResponse(c, status, "An internal error occurred")
		}
		return errorResponse(c, status, appErr.Message)
	}

	logger.Error("request failed", zap.String("action", action), zap.Error(err))
	return errorResponse(c, fiber.StatusInternalServerError, "An internal error occurred")
}
