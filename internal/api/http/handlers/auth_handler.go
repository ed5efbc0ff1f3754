package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	auth      *service.AuthService
	transport *auth.CookieTransport
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, transport *auth.CookieTransport) *AuthHandler {
	return &AuthHandler{auth: authService, transport: transport}
}

// Register handles POST /api/employees/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, token, _, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Salary:      req.Salary,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	h.transport.Attach(c, token)

	// The raw token is echoed for clients that do not rely on cookies.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Employee created successfully",
		"employee": dto.NewEmployeeResponse(employee),
		"token":    token,
	})
}

// Login handles POST /api/employees/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.transport.Attach(c, token)

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"employee": dto.NewEmployeeResponse(employee),
	})
}

// Logout handles POST /api/employees/logout. Clearing the cookie is the
// whole operation, so repeating it is harmless.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.transport.Detach(c)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// CurrentUser handles POST /api/employees/user. It validates the cookie
// token itself instead of going through the gate: both a missing and an
// invalid credential answer 401 here.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	claims, err := h.auth.CurrentUser(h.transport.Extract(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.CurrentUserResponse{ID: claims.EmployeeID, Email: claims.Email})
}
