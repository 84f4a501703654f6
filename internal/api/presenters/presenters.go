package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes data as the response body. The API contract is the
// plain resource shape, not an envelope.
func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// MessageResponse writes a `{message}` body for operations without a
// resource result, e.g. deletes.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ErrorResponse writes a `{message}` error body.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
