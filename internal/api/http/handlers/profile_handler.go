package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// ProfileHandler exposes self-service profile endpoints. Identity always
// comes from the session claims the gate stored on the request.
type ProfileHandler struct {
	profile   *service.ProfileService
	transport *auth.CookieTransport
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profile *service.ProfileService, transport *auth.CookieTransport) *ProfileHandler {
	return &ProfileHandler{profile: profile, transport: transport}
}

// GetProfile handles GET /api/employees/profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	employee, err := h.profile.Get(c.Context(), claims.EmployeeID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(employee))
}

// UpdateUser handles PUT /api/employees/updateUser.
func (h *ProfileHandler) UpdateUser(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, err := h.profile.Update(c.Context(), claims.EmployeeID, service.ProfileUpdate{
		Name:        req.Name,
		Designation: req.Designation,
		Salary:      req.Salary,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully",
		"employee": dto.NewEmployeeResponse(employee),
	})
}

// DeleteUser handles DELETE /api/employees/deleteUser. Deleting the record
// also ends the session by clearing the cookie.
func (h *ProfileHandler) DeleteUser(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	if err := h.profile.Delete(c.Context(), claims.EmployeeID); err != nil {
		return err
	}

	h.transport.Detach(c)
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
