package handlers

import (
	"errors"
	"strings"

	"vault-api/internal/requests"
	"vault-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// AuthHandler handles account and token HTTP requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and returns its first token
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input requests.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	token, err := h.authService.Register(c.Context(), input.Username, input.Password, input.Email)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			response := httpx.Conflict("Username already exists", err)
			return httpx.SendResponse(c, response)
		}
		response := httpx.InternalServerError("Failed to register user", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.Created("User registered successfully", fiber.Map{
		"token":    token,
		"username": input.Username,
	})
	return httpx.SendResponse(c, response)
}

// Login verifies credentials and returns a token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input requests.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	token, err := h.authService.Login(c.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response := httpx.Unauthorized("Invalid credentials")
			return httpx.SendResponse(c, response)
		}
		response := httpx.InternalServerError("Failed to log in", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Login successful", fiber.Map{
		"token":    token,
		"username": input.Username,
	})
	return httpx.SendResponse(c, response)
}

// Validate reports whether the presented bearer token verifies
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")

	result := fiber.Map{"valid": false}
	if principal, err := h.authService.ResolvePrincipal(token); err == nil {
		result["valid"] = true
		result["username"] = principal.Username
	}

	response := httpx.OK("Token validated", result)
	return httpx.SendResponse(c, response)
}
