package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/Consort-Group-Corp/support-service/internal/api/http/handlers"
	"github.com/Consort-Group-Corp/support-service/internal/auth"
	"github.com/Consort-Group-Corp/support-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Support        *handlers.SupportHandler
	AdminPresets   *handlers.AdminPresetsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Role gating happens here; the business
// rules below assume the edge already authorized the caller.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	api := app.Group("/api/v1", cfg.AuthMiddleware.Handle)

	support := api.Group("/support", auth.RequireAuthenticated())
	support.Get("/presets", cfg.Support.GetPresets)
	support.Post("/tickets", cfg.Support.CreateTicket)

	admin := api.Group("/admin/support", auth.RequireSuperAdmin())
	admin.Get("/tickets", cfg.AdminTickets.ListTickets)
	admin.Patch("/tickets/:id/status", cfg.AdminTickets.UpdateTicketStatus)
	admin.Post("/presets", cfg.AdminPresets.CreatePreset)
	admin.Get("/presets", cfg.AdminPresets.ListPresets)
	admin.Patch("/presets/:id", cfg.AdminPresets.UpdatePreset)
	admin.Delete("/presets/:id", cfg.AdminPresets.DeletePreset)
}
