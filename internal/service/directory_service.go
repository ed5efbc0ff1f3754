package service

import (
	"context"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// DirectoryService answers paginated, filtered roster queries.
type DirectoryService struct {
	employees repository.EmployeeRepository
}

// NewDirectoryService constructs the service.
func NewDirectoryService(employees repository.EmployeeRepository) *DirectoryService {
	return &DirectoryService{employees: employees}
}

// DirectoryPage is one page of matching records plus pagination metadata.
type DirectoryPage struct {
	Employees      []domain.Employee
	Page           int
	Limit          int
	TotalEmployees int64
	NoOfPages      int64
}

// List returns page `page` of records matching the search term. The term, if
// present, is a case-insensitive substring match over name, email and
// designation; a record matches when any field contains it. TotalEmployees
// counts matches before pagination.
func (s *DirectoryService) List(ctx context.Context, page, limit int, search string) (*DirectoryPage, error) {
	if page < 1 || limit < 1 {
		return nil, apperrors.NewValidationError("Invalid page or limit parameters", nil)
	}

	total, err := s.employees.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	records, err := s.employees.List(ctx, repository.EmployeeFilter{
		Search: search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	return &DirectoryPage{
		Employees:      records,
		Page:           page,
		Limit:          limit,
		TotalEmployees: total,
		NoOfPages:      (total + int64(limit) - 1) / int64(limit),
	}, nil
}
