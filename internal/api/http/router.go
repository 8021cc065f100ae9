package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-service/internal/api/http/handlers"
	"github.com/spec-kit/healthcare-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Patients       *handlers.PatientsHandler
	Doctors        *handlers.DoctorsHandler
	Mappings       *handlers.MappingsHandler
	AuthMiddleware *auth.AuthMiddleware
	// Metrics serves the Prometheus exposition; optional.
	Metrics fiber.Handler
}

// RegisterRoutes wires HTTP routes. Everything under /api except register and
// login sits behind the token gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Banner)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	gate := cfg.AuthMiddleware.Handle
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", gate, cfg.Users.Me)

	patients := api.Group("/patients", gate)
	patients.Post("/", cfg.Patients.Create)
	patients.Get("/", cfg.Patients.List)
	patients.Get("/:id", cfg.Patients.Get)
	patients.Put("/:id", cfg.Patients.Update)
	patients.Delete("/:id", cfg.Patients.Delete)

	doctors := api.Group("/doctors", gate)
	doctors.Post("/", cfg.Doctors.Create)
	doctors.Get("/", cfg.Doctors.List)
	doctors.Get("/:id", cfg.Doctors.Get)
	doctors.Put("/:id", cfg.Doctors.Update)
	doctors.Delete("/:id", cfg.Doctors.Delete)

	mappings := api.Group("/mappings", gate)
	mappings.Post("/", cfg.Mappings.Create)
	mappings.Get("/", cfg.Mappings.List)
	mappings.Get("/:patient_id", cfg.Mappings.DoctorsForPatient)
	mappings.Delete("/:id", cfg.Mappings.Delete)
}
