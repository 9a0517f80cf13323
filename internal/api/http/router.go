package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/volunteer-hub/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Mock       *handlers.MockAPIHandler
	Volunteers *handlers.VolunteersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// The mock API dispatches on the action query parameter; verb
	// enforcement happens per action inside Dispatch.
	app.All("/api/mock", cfg.Mock.Dispatch)

	app.Post("/api/volunteers", cfg.Volunteers.Create)
	app.All("/api/volunteers", cfg.Volunteers.MethodNotAllowed)
}
