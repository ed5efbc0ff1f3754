package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/http/handlers"
	"github.com/spec-kit/employee-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Directory      *handlers.DirectoryHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/employees")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)

	// Self-checked: answers 401 for missing and invalid tokens alike,
	// unlike gated routes which distinguish 401 from 403.
	api.Post("/user", cfg.Auth.CurrentUser)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/", cfg.Directory.List)
	protected.Post("/logout", cfg.Auth.Logout)
	protected.Get("/profile", cfg.Profile.GetProfile)
	protected.Put("/updateUser", cfg.Profile.UpdateUser)
	protected.Delete("/deleteUser", cfg.Profile.DeleteUser)
}
