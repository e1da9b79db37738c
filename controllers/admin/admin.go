package adminController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
	"unireg/services"
)

// AdminController serves catalog management and the reporting views.
// Routes using it sit behind the Admin role gate.
type AdminController struct {
	catalog *services.CatalogService
	reports *services.ReportsService
}

func NewAdminController(catalog *services.CatalogService, reports *services.ReportsService) *AdminController {
	return &AdminController{catalog: catalog, reports: reports}
}

// ListCourses returns all courses, optionally filtered by ?search=.
func (ctrl *AdminController) ListCourses(c *fiber.Ctx) error {
	searchTerm, _ := c.Locals("searchTerm").(string)

	courses, err := ctrl.catalog.ListCourses(searchTerm)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns a single course.
func (ctrl *AdminController) GetCourse(c *fiber.Ctx) error {
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

// CreateCourse creates a new catalog entry.
func (ctrl *AdminController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.catalog.CreateCourse(*reqData)
	if err != nil {
		if ve, isValidation := services.AsValidationError(err); isValidation {
			return middleware.ValidationErrorResponse(c, ve.Fields)
		}
		if errors.Is(err, services.ErrDuplicateCourseCode) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code is already in use!", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse overwrites an existing course's fields.
func (ctrl *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.catalog.UpdateCourse(courseID, *reqData)
	if err != nil {
		if ve, isValidation := services.AsValidationError(err); isValidation {
			return middleware.ValidationErrorResponse(c, ve.Fields)
		}
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, services.ErrDuplicateCourseCode) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code is already in use!", nil)
		}
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course with no registrations.
func (ctrl *AdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	err := ctrl.catalog.DeleteCourse(courseID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrHasRegistrations):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot delete a course with existing registrations!", nil)
	case err != nil:
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// Roster lists a course's registrations ordered by student name.
func (ctrl *AdminController) Roster(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	roster, err := ctrl.reports.CourseRoster(courseID)
	if errors.Is(err, services.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roster fetched successfully!", roster)
}

// Students lists every student with their registration count.
func (ctrl *AdminController) Students(c *fiber.Ctx) error {
	students, err := ctrl.reports.Students()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}
