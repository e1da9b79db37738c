package authValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"unireg/middleware"
)

type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	AcademicYear string `json:"academic_year"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.AcademicYear = strings.TrimSpace(reqData.AcademicYear)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must be at most 100 characters!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(reqData.AcademicYear) > 50 {
			errors["academic_year"] = "Academic year must be at most 50 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ForgotPasswordRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Email == "" || !strings.Contains(reqData.Email, "@") {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "A valid email is required!"})
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Token) == "" {
			errors["token"] = "Reset token is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
