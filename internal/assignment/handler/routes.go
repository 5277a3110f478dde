package handler

import (
	"github.com/gofiber/fiber/v2"

	identityhandler "github.com/Keshaini/MEDITRACK-sub000/internal/identity/handler"
	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AssignmentHandler, m *identityhandler.AuthMiddleware) {
	assignments := app.Group("/api/v1/assignments", m.RequireAuth())

	assignments.Post("/assign", identityhandler.RequireRole(constant.RoleAdmin), h.Assign)
	assignments.Get("/my-doctors", identityhandler.RequireRole(constant.RolePatient), h.MyDoctors)
	assignments.Get("/my-patients", identityhandler.RequireRole(constant.RoleDoctor), h.MyPatients)
	assignments.Get("/all", identityhandler.RequireRole(constant.RoleAdmin), h.ListAll)
	assignments.Get("/:id", h.GetByID)
	assignments.Put("/:id/status", identityhandler.RequireRole(constant.RoleAdmin), h.UpdateStatus)
	assignments.Delete("/:id", identityhandler.RequireRole(constant.RoleAdmin), h.Delete)
}
