package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that only lets callers holding the
// given role through. It runs after JWTMiddleware, which stores the
// role claim in the request locals.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: role not found",
				"data":    nil,
			})
		}

		if role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
