package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
	"unireg/services"
)

// CoursePayload parses and validates a course create/update body. The
// catalog service validates again before persisting; this keeps bad
// payloads from ever reaching a controller.
func CoursePayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.CourseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := services.ValidateCourseInput(reqData); err != nil {
			if ve, ok := services.AsValidationError(err); ok {
				return middleware.ValidationErrorResponse(c, ve.Fields)
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// SearchQuery stashes the optional ?search= term.
func SearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("searchTerm", strings.TrimSpace(c.Query("search")))
		return c.Next()
	}
}
