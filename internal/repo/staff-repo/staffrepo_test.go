package staffrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/talmaprime/teaops/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	joinDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("new staff has no approved salary", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff (name, position, salary, approved_salary, join_date)")).
			WithArgs("Karim", "accountant", 30000.0, (*float64)(nil), joinDate).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))

		staff, err := repo.Create(context.Background(), &domain.Staff{
			Name:     "Karim",
			Position: "accountant",
			Salary:   30000,
			JoinDate: joinDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, 4, staff.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff")).
			WillReturnError(errors.New("database error"))

		staff, err := repo.Create(context.Background(), &domain.Staff{Name: "Karim", JoinDate: joinDate})
		assert.Error(t, err)
		assert.Nil(t, staff)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	joinDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	approved := 30000.0

	t.Run("returns staff by name", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "position", "salary", "approved_salary", "join_date", "leave_date"}).
			AddRow(4, "Karim", "accountant", 30000.0, &approved, joinDate, nil).
			AddRow(5, "Nusrat", "supervisor", 26000.0, nil, joinDate, nil)
		mock.ExpectQuery(regexp.QuoteMeta("FROM staff ORDER BY name")).
			WillReturnRows(rows)

		staff, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, staff, 2)
		assert.Equal(t, &approved, staff[0].ApprovedSalary)
		assert.Nil(t, staff[1].ApprovedSalary)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM staff")).
			WillReturnError(errors.New("database error"))

		staff, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, staff)
	})
}

func TestRepository_UpdateSalary(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("clears approved salary", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE staff SET salary = $1, approved_salary = NULL WHERE id = $2")).
			WithArgs(32000.0, 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateSalary(context.Background(), 4, 32000)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE staff SET salary = $1")).
			WithArgs(32000.0, 4).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateSalary(context.Background(), 4, 32000)
		assert.Error(t, err)
	})
}

func TestRepository_ApproveSalary(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE staff SET approved_salary = salary WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ApproveSalary(context.Background(), 4)
	assert.NoError(t, err)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 4)
	assert.NoError(t, err)
}
