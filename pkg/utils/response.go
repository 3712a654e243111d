package utils

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a JSON response with an optional message merged into
// the payload, e.g. {"message": "...", "post": {...}}.
func SuccessResponse(c *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// ErrorResponse sends a {"message": ...} JSON error. The underlying error, if
// any, is logged but never surfaced to the caller.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		LogError(message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}
