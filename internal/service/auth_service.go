package service

import (
	"context"
	"errors"
	"strings"
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

// AuthService coordinates registration, login and session issuance.
type AuthService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, employees repository.EmployeeRepository, dispatcher events.Dispatcher) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		employees:  employees,
		dispatcher: dispatcher,
		tokenMgr:   tokenMgr,
		bcryptCost: cfg.BcryptCost,
	}, nil
}

// RegisterInput carries new-employee fields.
type RegisterInput struct {
	Name        string
	Email       string
	Designation string
	Salary      float64
	Password    string
}

// Register creates a new employee record and issues a session token for it.
// Email uniqueness is left to the store constraint, so concurrent
// registrations with the same address resolve there and the loser surfaces
// as a conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Employee, string, time.Time, error) {
	if input.Name == "" || input.Email == "" || input.Designation == "" || input.Password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("All fields are required", nil)
	}
	if input.Salary <= 0 {
		return nil, "", time.Time{}, apperrors.NewValidationError("Salary must be a positive number", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	employee := &domain.Employee{
		Name:         input.Name,
		Email:        NormalizeEmail(input.Email),
		Designation:  input.Designation,
		Salary:       input.Salary,
		PasswordHash: hash,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", time.Time{}, apperrors.NewConflict("Employee already exists", map[string]any{"email": employee.Email})
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(employee.ID, employee.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.emit(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventEmployeeRegistered,
		EmployeeID: employee.ID,
		Email:      employee.Email,
		Timestamp:  time.Now(),
		Payload: events.EmployeeRegisteredPayload{
			Name:        employee.Name,
			Designation: employee.Designation,
		},
	})

	return employee, token, exp, nil
}

// Login authenticates an employee by email and password. Unknown email and
// wrong password produce the same response so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error) {
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("Email and password are required", nil)
	}

	employee, err := s.employees.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if !auth.VerifyPassword(employee.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}

	token, exp, err := s.tokenMgr.Issue(employee.ID, employee.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// CurrentUser resolves the identity embedded in a raw session token without
// touching the store. Both missing and invalid credentials answer 401 here;
// only the gate draws the 401/403 distinction.
func (s *AuthService) CurrentUser(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorized("Not authenticated")
	}
	claims, err := s.tokenMgr.Verify(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid token")
	}
	return claims, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) emit(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// NormalizeEmail lower-cases the login identifier so uniqueness and lookup
// agree with the case-insensitive directory search.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
