package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminControllers "unireg/controllers/admin"
	"unireg/middleware"
	"unireg/models"
	courseValidators "unireg/validators/course"
)

// SetupAdminRoutes sets up catalog management and reporting routes,
// all gated on the Admin role.
func SetupAdminRoutes(app *fiber.App, ctrl *adminControllers.AdminController) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/course/list", courseValidators.SearchQuery(), ctrl.ListCourses)
	adminGroup.Post("/course", courseValidators.CoursePayload(), ctrl.CreateCourse)
	adminGroup.Get("/course/:id", courseValidators.CourseID(), ctrl.GetCourse)
	adminGroup.Put("/course/:id", courseValidators.CourseID(), courseValidators.CoursePayload(), ctrl.UpdateCourse)
	adminGroup.Delete("/course/:id", courseValidators.CourseID(), ctrl.DeleteCourse)
	adminGroup.Get("/course/:id/roster", courseValidators.CourseID(), ctrl.Roster)

	adminGroup.Get("/students", ctrl.Students)
}
