package response

import "github.com/gofiber/fiber/v2"

// Error payloads carry either an "error" or a "message" key. Which key an
// endpoint uses is part of the wire contract the mobile client consumes,
// so both shapes are kept.

// Message sends a response with a message field
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// Error sends a response with an error field
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// BadRequest sends a 400 bad request error
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 with a message field (the auth-gate contract)
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found error
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
