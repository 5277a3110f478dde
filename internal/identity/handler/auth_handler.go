package handler

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/dto"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/service"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
)

type AuthHandler struct {
	accountService *service.AccountService
	lockoutService *service.LockoutService
	logger         logging.Logger
}

func NewAuthHandler(accountService *service.AccountService, lockoutService *service.LockoutService,
	logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		lockoutService: lockoutService,
		logger:         logger,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, err := h.accountService.Register(c.UserContext(), input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     account.ID,
		"email":  account.Email,
		"role":   account.Role,
		"status": account.Status,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokenResponse, err := h.accountService.Login(c.UserContext(), input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	account, err := h.accountService.GetProfile(c.UserContext(), claims.AccountID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(account)
}

func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, err := h.accountService.UpdateProfile(c.UserContext(), claims.AccountID, input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(account)
}

func (h *AuthHandler) ListLockoutPolicies(c *fiber.Ctx) error {
	policies, err := h.lockoutService.ListPolicies(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(policies)
}

func (h *AuthHandler) UpdateLockoutPolicy(c *fiber.Ctx) error {
	var input dto.LockoutPolicyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	policy, err := h.lockoutService.UpdatePolicy(c.UserContext(), c.Params("role"), input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(policy)
}

func (h *AuthHandler) fail(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	if code == fiber.StatusInternalServerError {
		h.logger.Error(c.UserContext(), "unexpected error", "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": apperrors.SafeMessage(err)})
}
