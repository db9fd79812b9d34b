package handlers

import (
	"versahook/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	services := fiber.Map{
		"database": "connected",
		"redis":    "connected",
	}

	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
			services["database"] = "unavailable"
		}
	}
	if repositories.RecordCache != nil {
		if err := repositories.RecordCache.HealthCheck(c.Context()); err != nil {
			services["redis"] = "unavailable"
		}
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"version":  "1.0.0",
		"services": services,
	})
}

func CacheStats(c *fiber.Ctx) error {
	if repositories.RecordCache == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cache not configured"})
	}

	poolStats := repositories.RecordCache.Stats()
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
