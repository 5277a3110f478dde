package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/service"
	"github.com/Keshaini/MEDITRACK-sub000/pkg/constant"
)

// AuthMiddleware verifies bearer tokens and attaches the resolved identity to
// the request. Every protected route goes through RequireAuth; role checks
// are declared per route group with RequireRole instead of inline literals.
type AuthMiddleware struct {
	tokens   service.TokenGenerator
	accounts domain.AccountRepository
}

func NewAuthMiddleware(tokens service.TokenGenerator, accounts domain.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, accounts: accounts}
}

func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c)
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		// Re-resolve the account: a deleted account loses access immediately
		// even while its token is still unexpired, and role changes take
		// effect on the next request.
		account, err := m.accounts.GetByID(c.UserContext(), claims.AccountID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
		if account == nil {
			return unauthorized(c)
		}
		claims.Role = account.Role

		c.Locals(constant.LocalsClaims, claims)

		return c.Next()
	}
}

// RequireRole fails with 403 unless the authenticated role is in the allowed
// set. Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return unauthorized(c)
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": apperrors.ErrForbidden.Error(),
		})
	}
}

// ClaimsFromCtx returns the verified claims stored by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*service.Claims, bool) {
	claims, ok := c.Locals(constant.LocalsClaims).(*service.Claims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": apperrors.ErrUnauthorized.Error(),
	})
}
