// Package main is the entry point for the customer backend.
// It initializes the database connection pool, runs schema migrations, and
// serves the JSON API with CORS and body-size limits applied globally.
package main

import (
	"log"

	"github.com/STS-Engineer/customer-backend/internal/config"
	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/handlers"
	"github.com/STS-Engineer/customer-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	// Structured logger: production config in production, human-readable otherwise
	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection pool
	// This establishes connection to PostgreSQL and verifies connectivity
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Apply pending schema migrations before accepting traffic
	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber application. The body limit mirrors the large JSON imports
	// the frontend performs on unit creation.
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
	})

	// Panic recovery (should be first)
	app.Use(recover.New())

	// Structured request logging
	app.Use(middleware.RequestLogger(logger))

	// CORS for the frontend origin(s); credentials enabled for cookie-based
	// clients. Preflight requests are answered by the middleware itself.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	}))

	// API routes
	handlers.RegisterRoutes(app, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
