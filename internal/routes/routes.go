// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"versahook/internal/handlers"
	"versahook/internal/middleware"
	"versahook/internal/models"
	"versahook/internal/repositories"
	"versahook/internal/services/ledger"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, service ledger.Service, journal repositories.JournalRepository) {
	hookHandler := handlers.NewHookHandler(service, journal)
	adminHandler := handlers.NewAdminHandler(service)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Versa Hook API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Simulation endpoints
	hook := api.Group("/hook")
	hook.Post("/simulate", limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}), hookHandler.SimulateTransfer)
	hook.Get("/users/:id", hookHandler.GetUserState)
	hook.Get("/users/:id/transfers", hookHandler.GetUserTransfers)
	hook.Get("/transfers/:reference", hookHandler.GetTransfer)
	hook.Get("/stats", hookHandler.GetStats)

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminAuth)
	admin.Post("/blacklist/:id", middleware.HasPermission(models.PermissionHookWrite), adminHandler.BlacklistUser)
	admin.Post("/pause", middleware.HasPermission(models.PermissionHookWrite), adminHandler.SetPause)
	admin.Get("/cache-stats", handlers.CacheStats)
}
