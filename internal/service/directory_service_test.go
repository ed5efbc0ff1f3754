package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-directory/internal/domain"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

func seedDirectory(t *testing.T, repo *stubEmployeeRepo, count int, designation string) {
	t.Helper()
	for i := 0; i < count; i++ {
		err := repo.Create(context.Background(), &domain.Employee{
			Name:         fmt.Sprintf("Person %c", 'A'+i),
			Email:        fmt.Sprintf("person%d@%s.com", i, designation),
			Designation:  designation,
			Salary:       1000,
			PasswordHash: "digest",
		})
		require.NoError(t, err)
	}
}

func TestDirectoryList_PaginationMetadata(t *testing.T) {
	t.Parallel()
	repo := newStubEmployeeRepo()
	seedDirectory(t, repo, 7, "eng")
	seedDirectory(t, repo, 3, "sales")
	svc := NewDirectoryService(repo)

	page, err := svc.List(context.Background(), 1, 5, "eng")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, int64(7), page.TotalEmployees)
	assert.Equal(t, int64(2), page.NoOfPages)
	assert.Len(t, page.Employees, 5)
}

func TestDirectoryList_PaginationIsComplete(t *testing.T) {
	t.Parallel()
	repo := newStubEmployeeRepo()
	seedDirectory(t, repo, 7, "eng")
	svc := NewDirectoryService(repo)

	seen := map[int64]bool{}
	total := 0
	for p := 1; p <= 2; p++ {
		page, err := svc.List(context.Background(), p, 5, "eng")
		require.NoError(t, err)
		for _, e := range page.Employees {
			assert.False(t, seen[e.ID], "duplicate record %d on page %d", e.ID, p)
			seen[e.ID] = true
			total++
		}
	}
	assert.Equal(t, 7, total)
}

func TestDirectoryList_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo := newStubEmployeeRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Employee{
		Name:         "Alice Smith",
		Email:        "alice@x.com",
		Designation:  "Engineer",
		Salary:       1000,
		PasswordHash: "digest",
	}))
	svc := NewDirectoryService(repo)

	page, err := svc.List(context.Background(), 1, 5, "alice")
	require.NoError(t, err)
	require.Len(t, page.Employees, 1)
	assert.Equal(t, "Alice Smith", page.Employees[0].Name)
}

func TestDirectoryList_MatchesAnyField(t *testing.T) {
	t.Parallel()
	repo := newStubEmployeeRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Employee{
		Name:         "Bob",
		Email:        "bob@corp.com",
		Designation:  "Sales Engineer",
		Salary:       900,
		PasswordHash: "digest",
	}))
	svc := NewDirectoryService(repo)

	// Term only appears in the designation.
	page, err := svc.List(context.Background(), 1, 5, "ENGINEER")
	require.NoError(t, err)
	assert.Len(t, page.Employees, 1)
}

func TestDirectoryList_RejectsInvalidPaging(t *testing.T) {
	t.Parallel()
	svc := NewDirectoryService(newStubEmployeeRepo())

	for _, tc := range []struct{ page, limit int }{{0, 5}, {1, 0}, {-1, 5}, {1, -3}} {
		_, err := svc.List(context.Background(), tc.page, tc.limit, "")
		require.Error(t, err, "page=%d limit=%d", tc.page, tc.limit)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	}
}

func TestDirectoryList_EmptyPageBeyondEnd(t *testing.T) {
	t.Parallel()
	repo := newStubEmployeeRepo()
	seedDirectory(t, repo, 2, "eng")
	svc := NewDirectoryService(repo)

	page, err := svc.List(context.Background(), 5, 5, "")
	require.NoError(t, err)
	assert.Empty(t, page.Employees)
	assert.Equal(t, int64(2), page.TotalEmployees)
	assert.Equal(t, int64(1), page.NoOfPages)
}
