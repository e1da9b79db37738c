package registrationValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
)

// RegistrationID validates the :id route parameter of an enrollment.
func RegistrationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Registration ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Registration ID!", nil)
		}

		c.Locals("registrationID", uint(id))
		return c.Next()
	}
}
