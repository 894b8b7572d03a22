package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRoutes wires every API route onto the Fiber application.
// Handlers are constructed here so main only deals with app-level concerns.
func RegisterRoutes(app *fiber.App, logger *zap.Logger) {
	groupHandler := NewGroupHandler(logger)
	unitHandler := NewUnitHandler(logger)
	personHandler := NewPersonHandler(logger)

	api := app.Group("/api")

	// Groups
	api.Get("/groups", groupHandler.List)
	api.Post("/groups", groupHandler.Create)
	api.Put("/groups/:id", groupHandler.Update)
	api.Delete("/groups/:id", groupHandler.Delete)
	api.Get("/groups/:id/complete", groupHandler.Complete)

	// Units
	api.Post("/units", unitHandler.Create)
	api.Get("/units/:id", unitHandler.GetByID)
	api.Put("/units/:id", unitHandler.Update)

	// Persons
	// by-domain is registered before :id so the literal segment wins matching
	api.Get("/persons/by-domain", personHandler.ByDomain)
	api.Get("/persons/:id", personHandler.GetByID)
}
