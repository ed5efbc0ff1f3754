package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
)

// stubEmployeeRepo is an in-memory EmployeeRepository mirroring the store
// contract: unique email on create/update, ErrNoRows for missing rows,
// id-ordered listing.
type stubEmployeeRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{records: make(map[int64]domain.Employee)}
}

func (s *stubEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Email == employee.Email {
			return repository.ErrEmailTaken
		}
	}
	s.nextID++
	employee.ID = s.nextID
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	s.records[employee.ID] = *employee
	return nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, r := range s.records {
		if id != employee.ID && r.Email == employee.Email {
			return repository.ErrEmailTaken
		}
	}
	employee.UpdatedAt = time.Now()
	s.records[employee.ID] = *employee
	return nil
}

func (s *stubEmployeeRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := r
	return &out, nil
}

func (s *stubEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Email == email {
			out := r
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	matched := s.matching(filter.Search)
	offset := filter.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *stubEmployeeRepo) Count(_ context.Context, search string) (int64, error) {
	return int64(len(s.matching(search))), nil
}

func (s *stubEmployeeRepo) matching(search string) []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(search))
	var out []domain.Employee
	for _, r := range s.records {
		if term == "" ||
			strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Email), term) ||
			strings.Contains(strings.ToLower(r.Designation), term) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
