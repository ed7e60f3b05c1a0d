package middleware

import (
	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleResolver is the single capability every role gate consults. The
// user service backs it with the users table, so role checks cannot
// diverge between endpoints.
type RoleResolver interface {
	ResolveRole(userID uuid.UUID) (string, error)
}

// RoleRequired rejects callers whose resolved role differs from the
// required one. It assumes JWTProtected has already run.
func RoleRequired(resolver RoleResolver, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		resolved, err := resolver.ResolveRole(userID)
		if err != nil || resolved != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access requires " + role + " role",
			})
		}

		return c.Next()
	}
}
