package authController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unireg/config"
	"unireg/middleware"
	"unireg/models"
	"unireg/repository"
	"unireg/utils"
	authValidator "unireg/validators/auth"
)

// AuthController handles signup, login and the password-reset flow.
// Everything here is identity plumbing; the domain services never see
// credentials.
type AuthController struct {
	users  *repository.UserRepository
	resets *repository.PasswordResetRepository
}

func NewAuthController(users *repository.UserRepository, resets *repository.PasswordResetRepository) *AuthController {
	return &AuthController{users: users, resets: resets}
}

// Signup registers a new student account.
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	if _, err := ctrl.users.GetByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		Role:         models.RoleStudent,
		AcademicYear: reqData.AcademicYear,
	}

	if err := ctrl.users.Create(&newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	// Best effort, never blocks the signup
	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login authenticates a user and returns a JWT carrying the role claim.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.users.GetByEmail(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// ForgotPassword issues a reset token and mails the reset link. The
// response never reveals whether the email exists.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.users.GetByEmail(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset link has been sent.", nil)
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(config.AppConfig.ResetTokenTTL) * time.Minute),
	}

	if err := ctrl.resets.Create(&reset); err != nil {
		log.Printf("Error creating password reset: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	resetLink := fmt.Sprintf("%s/auth/reset/password?token=%s", config.AppConfig.AppBaseURL, reset.Token)
	utils.SendPasswordResetEmail(user.Email, user.Name, resetLink)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset link has been sent.", nil)
}

// ResetPassword consumes a reset token and replaces the password hash.
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reset, err := ctrl.resets.GetByToken(reqData.Token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}

	if reset.UsedAt != nil || time.Now().After(reset.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := ctrl.users.UpdatePassword(reset.UserID, string(hashedPassword)); err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	if err := ctrl.resets.MarkUsed(reset.ID); err != nil {
		log.Printf("Error marking reset token used: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
