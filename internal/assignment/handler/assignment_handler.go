package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/dto"
	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/service"
	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	identityhandler "github.com/Keshaini/MEDITRACK-sub000/internal/identity/handler"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
)

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	logger            logging.Logger
}

func NewAssignmentHandler(assignmentService *service.AssignmentService, logger logging.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

func (h *AssignmentHandler) Assign(c *fiber.Ctx) error {
	claims, ok := identityhandler.ClaimsFromCtx(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized)
	}

	var input dto.AssignInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	assignment, created, err := h.assignmentService.Assign(c.UserContext(), input, claims.AccountID)
	if err != nil {
		return h.fail(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}

	return c.Status(status).JSON(assignment)
}

func (h *AssignmentHandler) MyDoctors(c *fiber.Ctx) error {
	claims, ok := identityhandler.ClaimsFromCtx(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized)
	}

	assignments, err := h.assignmentService.ListForPatient(c.UserContext(), claims.AccountID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assignments)
}

func (h *AssignmentHandler) MyPatients(c *fiber.Ctx) error {
	claims, ok := identityhandler.ClaimsFromCtx(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized)
	}

	assignments, err := h.assignmentService.ListForDoctor(c.UserContext(), claims.AccountID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assignments)
}

func (h *AssignmentHandler) ListAll(c *fiber.Ctx) error {
	assignments, err := h.assignmentService.ListAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assignments)
}

func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
	claims, ok := identityhandler.ClaimsFromCtx(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized)
	}

	assignment, err := h.assignmentService.GetByID(c.UserContext(), c.Params("id"), claims.AccountID, claims.Role)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assignment)
}

func (h *AssignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	assignment, err := h.assignmentService.UpdateStatus(c.UserContext(), c.Params("id"), input.Status)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assignment)
}

func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.assignmentService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "assignment deleted",
	})
}

func (h *AssignmentHandler) fail(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	if code == fiber.StatusInternalServerError {
		h.logger.Error(c.UserContext(), "unexpected error", "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": apperrors.SafeMessage(err)})
}
