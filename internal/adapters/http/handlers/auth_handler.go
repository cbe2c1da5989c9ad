package handlers

import (
	"errors"
	"strings"

	"studyspace-booking/internal/core/domain"
	"studyspace-booking/internal/core/services"
	"studyspace-booking/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Description Create a user account; username and email must be unique
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Message(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input := &services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
	}

	if err := h.authService.Register(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return response.Message(c, fiber.StatusBadRequest, "All fields are required to be filled!")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Message(c, fiber.StatusBadRequest, "Email or Username already exists!")
		default:
			return response.InternalServerError(c, err.Error())
		}
	}

	return response.Message(c, fiber.StatusOK, "User registered!")
}

// Login handles user login
// @Summary Login
// @Description Authenticate by username or email and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Message(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.UsernameOrEmail), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Message(c, fiber.StatusUnauthorized, "Invalid credentials!")
		}
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful!",
		"username": result.Username,
		"fullName": result.FullName,
		"token":    result.Token,
	})
}
