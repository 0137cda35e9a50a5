package handlers

import "github.com/gofiber/fiber/v3"

// Index documents the available endpoints for anyone poking at the root.
func Index(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "cvnapi",
		"endpoints": fiber.Map{
			"lookup":  "/api?users=Name|Name&pages=Title|Title[&callback=fn]",
			"health":  "/healthz",
			"ready":   "/readyz",
			"metrics": "/metrics",
		},
	})
}
