package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseControllers "unireg/controllers/course"
	registrationControllers "unireg/controllers/registration"
	"unireg/middleware"
	courseValidators "unireg/validators/course"
	registrationValidators "unireg/validators/registration"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App, courseCtrl *courseControllers.CourseController, regCtrl *registrationControllers.RegistrationController) {
	courseGroup := app.Group("/course")

	// Catalog browsing; /list must be registered before /:id
	courseGroup.Get("/list", middleware.JWTMiddleware, courseCtrl.ListAvailable)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidators.CourseID(), courseCtrl.GetCourse)

	// Registration
	courseGroup.Post("/:id/register", middleware.JWTMiddleware, courseValidators.CourseID(), regCtrl.Register)

	registrationGroup := app.Group("/registration")
	registrationGroup.Delete("/:id", middleware.JWTMiddleware, registrationValidators.RegistrationID(), regCtrl.Unregister)

	userGroup := app.Group("/user")
	userGroup.Get("/registrations", middleware.JWTMiddleware, regCtrl.MyRegistrations)
}
