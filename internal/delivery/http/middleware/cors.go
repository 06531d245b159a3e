package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewCORS allows cross-origin calls from the frontend dev server. Origins are
// configurable; empty means allow all.
func NewCORS(origins []string) fiber.Handler {
	cfg := cors.Config{
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
