package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

const minPasswordLength = 8

// ProfileService manages the authenticated caller's own record.
type ProfileService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewProfileService constructs the service.
func NewProfileService(cfg config.AuthConfig, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{
		employees:  employees,
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// ProfileUpdate carries partial update fields. Nil means "leave unchanged";
// empty strings are treated the same way.
type ProfileUpdate struct {
	Name        *string
	Designation *string
	Salary      *float64
	Password    *string
}

// Get returns the caller's own record. The identity may have vanished
// mid-session, in which case this is a not-found, not an auth failure.
func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee", nil)
		}
		return nil, err
	}
	return employee, nil
}

// Update applies the supplied fields to the caller's record; omitted fields
// retain their prior values. A new password must be at least 8 characters
// and is hashed before storage.
func (s *ProfileService) Update(ctx context.Context, id int64, update ProfileUpdate) (*domain.Employee, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	if update.Name != nil && *update.Name != "" {
		employee.Name = *update.Name
		changed = append(changed, "name")
	}
	if update.Designation != nil && *update.Designation != "" {
		employee.Designation = *update.Designation
		changed = append(changed, "designation")
	}
	if update.Salary != nil {
		if *update.Salary <= 0 {
			return nil, apperrors.NewValidationError("Salary must be a positive number", nil)
		}
		employee.Salary = *update.Salary
		changed = append(changed, "salary")
	}
	if update.Password != nil && *update.Password != "" {
		if len(*update.Password) < minPasswordLength {
			return nil, apperrors.NewValidationError("Password must be at least 8 characters long", nil)
		}
		hash, err := auth.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee", nil)
		}
		return nil, err
	}

	if len(changed) > 0 {
		s.emit(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventEmployeeUpdated,
			EmployeeID: employee.ID,
			Email:      employee.Email,
			Timestamp:  time.Now(),
			Payload:    events.EmployeeUpdatedPayload{ChangedFields: changed},
		})
	}

	return employee, nil
}

// Delete removes the caller's record. The caller's session cookie is cleared
// at the HTTP boundary; the token itself stays structurally valid until
// natural expiry.
func (s *ProfileService) Delete(ctx context.Context, id int64) error {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Employee", nil)
		}
		return err
	}

	s.emit(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventEmployeeDeleted,
		EmployeeID: employee.ID,
		Email:      employee.Email,
		Timestamp:  time.Now(),
	})
	return nil
}

func (s *ProfileService) emit(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
