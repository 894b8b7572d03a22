// Package handlers implements the HTTP request handlers for the customer
// backend. Each handler follows the same lifecycle: validate required input,
// run the repository call(s), map rows to the response shape, respond. A
// failure at any step short-circuits into the error envelope below; no
// partial response is ever written first.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorJSON writes the uniform error envelope used by every failure path.
// The body shape is always {"error": <message>}.
func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serverError logs the underlying store failure and answers with a generic
// 500. The cause is never echoed to the caller.
func serverError(c *fiber.Ctx, logger *zap.Logger, context string, err error) error {
	logger.Error(context, zap.Error(err), zap.String("path", c.Path()))
	return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
}
