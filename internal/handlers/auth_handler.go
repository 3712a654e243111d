package handlers

import (
	"errors"

	"blog-api/internal/config"
	"blog-api/internal/middleware"
	"blog-api/internal/models"
	"blog-api/internal/requests"
	"blog-api/internal/services"
	"blog-api/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	jwt *services.JWTService
}

func NewAuthHandler(db *gorm.DB, jwt *services.JWTService) *AuthHandler {
	return &AuthHandler{db: db, jwt: jwt}
}

// publicUser is the subset of user fields echoed by auth endpoints.
func publicUser(user models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"fullName": user.FullName,
		"email":    user.Email,
		"image":    user.Image,
	}
}

// Signup handles user registration
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input requests.SignupRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if err := utils.ValidateRequest(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	// Normalize email
	input.Email = utils.NormalizeEmail(input.Email)

	// Check if email exists - use case-insensitive comparison
	var existingUser models.User
	if result := h.db.Where("LOWER(email) = LOWER(?)", input.Email).First(&existingUser); result.Error == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, config.Messages.Auth.Error.EmailExists, nil)
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	user := models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: hashedPassword,
		Image:    input.Image,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, config.Messages.Auth.Success.Registration, fiber.Map{
		"user": publicUser(user),
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input requests.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Auth.Error.MissingCredentials, nil)
	}

	// Normalize email
	input.Email = utils.NormalizeEmail(input.Email)

	// Unknown email and wrong password are reported identically
	var user models.User
	result := h.db.Where("LOWER(email) = LOWER(?)", input.Email).First(&user)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, result.Error)
		}
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.InvalidCredentials, nil)
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.InvalidCredentials, nil)
	}

	token, err := h.jwt.GenerateToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.Messages.Auth.Success.Login, fiber.Map{
		"token": token,
		"user":  publicUser(user),
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"user": user,
	})
}
