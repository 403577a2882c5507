package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/api/http/handlers"
	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Chat              *handlers.ChatHandler
	Admin             *handlers.AdminHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Auth.Root)
	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/logout", cfg.Auth.Logout)

	app.Get("/chat", cfg.SessionMiddleware.HandleBrowser, cfg.Auth.ChatPage)

	api := app.Group("/api", cfg.SessionMiddleware.Handle)
	api.Post("/chat", cfg.Chat.Send)

	admin := app.Group("/admin", cfg.SessionMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/logs", cfg.Admin.Logs)
	admin.Get("/metrics", cfg.Admin.Metrics)
}
