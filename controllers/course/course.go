package courseController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
	"unireg/services"
)

// CourseController serves the student-facing catalog views.
type CourseController struct {
	catalog *services.CatalogService
	reports *services.ReportsService
}

func NewCourseController(catalog *services.CatalogService, reports *services.ReportsService) *CourseController {
	return &CourseController{catalog: catalog, reports: reports}
}

// ListAvailable returns every active course annotated with the calling
// student's registration flag and the registration count.
func (ctrl *CourseController) ListAvailable(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := ctrl.reports.AvailableCourses(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns a single course by its internal id.
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	course, err := ctrl.catalog.GetCourse(courseID)
	if errors.Is(err, services.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
