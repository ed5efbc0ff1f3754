package dto

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// RegisterRequest payload for new employees.
type RegisterRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Designation string  `json:"designation"`
	Salary      float64 `json:"salary"`
	Password    string  `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries partial profile fields; absent fields stay
// untouched.
type UpdateProfileRequest struct {
	Name        *string  `json:"name"`
	Designation *string  `json:"designation"`
	Salary      *float64 `json:"salary"`
	Password    *string  `json:"password"`
}

// EmployeeResponse is the read-only projection of an employee record. There
// is deliberately no password field.
type EmployeeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	Salary      float64   `json:"salary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEmployeeResponse projects a domain record.
func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Designation: e.Designation,
		Salary:      e.Salary,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// NewEmployeeResponses projects a slice of domain records.
func NewEmployeeResponses(records []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(records))
	for i := range records {
		out = append(out, NewEmployeeResponse(&records[i]))
	}
	return out
}

// DirectoryResponse is one page of the employee listing.
type DirectoryResponse struct {
	Page           int                `json:"page"`
	Limit          int                `json:"limit"`
	TotalEmployees int64              `json:"totalEmployees"`
	NoOfPages      int64              `json:"noOfPages"`
	Employees      []EmployeeResponse `json:"employees"`
}

// CurrentUserResponse echoes the identity claims of the session token.
type CurrentUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
