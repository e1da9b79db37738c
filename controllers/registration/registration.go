package registrationController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
	"unireg/services"
	"unireg/utils"
)

// RegistrationController handles a student registering for and leaving
// courses, plus their own registration list.
type RegistrationController struct {
	ledger  *services.RegistrationService
	catalog *services.CatalogService
	reports *services.ReportsService
	users   services.UserStore
}

func NewRegistrationController(
	ledger *services.RegistrationService,
	catalog *services.CatalogService,
	reports *services.ReportsService,
	users services.UserStore,
) *RegistrationController {
	return &RegistrationController{ledger: ledger, catalog: catalog, reports: reports, users: users}
}

// Register enrolls the calling student in a course.
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	enrollment, err := ctrl.ledger.Register(userID, courseID)
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already registered for this course!", nil)
	case errors.Is(err, services.ErrCourseUnavailable):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not available!", nil)
	case err != nil:
		log.Printf("Error registering student %d for course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for course!", nil)
	}

	// Confirmation mail is best effort; the registration is already
	// committed at this point.
	if user, err := ctrl.users.GetByID(userID); err == nil {
		if course, err := ctrl.catalog.GetCourse(courseID); err == nil {
			utils.SendRegistrationEmail(user.Email, user.Name, course.Name, course.Code)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registered for course successfully!", enrollment)
}

// Unregister cancels the calling student's own registration.
func (ctrl *RegistrationController) Unregister(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	registrationID, ok := c.Locals("registrationID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Registration ID!", nil)
	}

	enrollment, err := ctrl.ledger.Unregister(registrationID, userID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	case errors.Is(err, services.ErrNotOwner):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only cancel your own registrations!", nil)
	case errors.Is(err, services.ErrNotActive):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Registration is not active!", nil)
	case err != nil:
		log.Printf("Error unregistering registration %d: %v", registrationID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel registration!", nil)
	}

	utils.SendUnregistrationEmail(enrollment.Student.Email, enrollment.Student.Name,
		enrollment.Course.Name, enrollment.Course.Code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration cancelled successfully!", nil)
}

// MyRegistrations lists the calling student's registrations, newest first.
func (ctrl *RegistrationController) MyRegistrations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	registrations, err := ctrl.reports.StudentRegistrations(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", registrations)
}
