package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// DirectoryHandler exposes the paginated employee listing.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List handles GET /api/employees/?page&limit&search.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return apperrors.NewValidationError("Invalid page or limit parameters", nil)
	}
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil {
		return apperrors.NewValidationError("Invalid page or limit parameters", nil)
	}

	result, err := h.directory.List(c.Context(), page, limit, c.Query("search"))
	if err != nil {
		return err
	}

	return c.JSON(dto.DirectoryResponse{
		Page:           result.Page,
		Limit:          result.Limit,
		TotalEmployees: result.TotalEmployees,
		NoOfPages:      result.NoOfPages,
		Employees:      dto.NewEmployeeResponses(result.Employees),
	})
}
