package middleware

import (
	"strings"

	"go-admin-console/internal/model"
	"go-admin-console/internal/repository"
	"go-admin-console/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT token, reloads the account and places
// the current-user context in request locals
func RequireAuth(accountRepo repository.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		account, err := accountRepo.FindByID(claims.AccountID)
		if err != nil || account == nil {
			return c.Status(401).JSON(fiber.Map{"error": "Account not found"})
		}

		if account.Status != model.StatusNormal {
			return c.Status(401).JSON(fiber.Map{"error": "Account is forbidden"})
		}

		if account.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		// Set current-user context for downstream handlers
		c.Locals("account_id", account.ID)
		c.Locals("username", account.Username)
		c.Locals("identity", account.Identity)

		return c.Next()
	}
}

// CurrentUser reads the identity placed in locals by RequireAuth
func CurrentUser(c *fiber.Ctx) model.CurrentUser {
	user := model.CurrentUser{}
	if id, ok := c.Locals("account_id").(uint); ok {
		user.AccountID = id
	}
	if identity, ok := c.Locals("identity").(model.Identity); ok {
		user.Identity = identity
	}
	return user
}
