package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, m *AuthMiddleware) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", m.RequireAuth(), h.Me)
	auth.Put("/me", m.RequireAuth(), h.UpdateMe)

	admin := app.Group("/api/v1/admin", m.RequireAuth(), RequireRole(constant.RoleAdmin))
	admin.Get("/lockout-policies", h.ListLockoutPolicies)
	admin.Put("/lockout-policies/:role", h.UpdateLockoutPolicy)
}
