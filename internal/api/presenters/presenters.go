package presenters

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

type (
	SuccessEnvelope struct {
		Success bool        `json:"success"`
		Message string      `json:"message,omitempty"`
		Data    interface{} `json:"data,omitempty"`
	}

	ErrorEnvelope struct {
		Success bool      `json:"success"`
		Error   ErrorBody `json:"error"`
	}

	ErrorBody struct {
		Message    string `json:"message"`
		Code       string `json:"code"`
		StatusCode int    `json:"status_code"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(SuccessEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return c.Status(statusCode).JSON(ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Message:    errorMessage(statusCode, message, err),
			Code:       errorCode(statusCode),
			StatusCode: statusCode,
		},
	})
}

func errorMessage(statusCode int, message string, err error) string {
	if err == nil {
		return message
	}
	// Internal error details stay out of responses outside development.
	if statusCode >= fiber.StatusInternalServerError && os.Getenv("APP_ENV") != "development" {
		return message
	}
	return err.Error()
}

func errorCode(statusCode int) string {
	switch statusCode {
	case fiber.StatusBadRequest:
		return "VALIDATION_ERROR"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusInternalServerError:
		return "INTERNAL_ERROR"
	default:
		return "ERROR"
	}
}
