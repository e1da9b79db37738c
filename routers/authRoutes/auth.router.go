package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "unireg/controllers/auth"
	authValidators "unireg/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authControllers.AuthController) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidators.Login(), ctrl.Login)
	authGroup.Post("/forgot/password", authValidators.ForgotPassword(), ctrl.ForgotPassword)
	authGroup.Patch("/reset/password", authValidators.ResetPassword(), ctrl.ResetPassword)
}
