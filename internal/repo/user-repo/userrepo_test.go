package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
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

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "mdsahib",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
					AddRow(1, "mdsahib", "hashed_password", domain.RoleMD)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("mdsahib").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "mdsahib",
				PasswordHash: "hashed_password",
				Role:         domain.RoleMD,
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "mdsahib",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("mdsahib").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   3,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
					AddRow(3, "clerk", "hashed_password", domain.RoleDataEntry)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE id = $1")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           3,
				Username:     "clerk",
				PasswordHash: "hashed_password",
				Role:         domain.RoleDataEntry,
			},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "new_manager",
				PasswordHash: "hashed_password",
				Role:         domain.RoleManager,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (username, password_hash, role)
					VALUES ($1, $2, $3)
					RETURNING id
				`)).
					WithArgs("new_manager", "hashed_password", domain.RoleManager).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
			},
			expectErr: false,
			result: &domain.User{
				ID:           5,
				Username:     "new_manager",
				PasswordHash: "hashed_password",
				Role:         domain.RoleManager,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Username:     "new_manager",
				PasswordHash: "hashed_password",
				Role:         domain.RoleManager,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (username, password_hash, role)
					VALUES ($1, $2, $3)
					RETURNING id
				`)).
					WithArgs("new_manager", "hashed_password", domain.RoleManager).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("returns users ordered by role and name", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "username", "role"}).
			AddRow(2, "boss", domain.RoleAdmin).
			AddRow(1, "mdsahib", domain.RoleMD)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, role FROM users ORDER BY role, username")).
			WillReturnRows(rows)

		users, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "boss", users[0].Username)
		assert.Equal(t, domain.RoleMD, users[1].Role)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, role FROM users")).
			WillReturnError(errors.New("database error"))

		users, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("updates hash", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $1 WHERE id = $2")).
			WithArgs("new_hash", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdatePassword(context.Background(), 1, "new_hash")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $1 WHERE id = $2")).
			WithArgs("new_hash", 1).
			WillReturnError(errors.New("database error"))

		err := repo.UpdatePassword(context.Background(), 1, "new_hash")
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("deletes user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(context.Background(), 4)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(4).
			WillReturnError(errors.New("database error"))

		err := repo.Delete(context.Background(), 4)
		assert.Error(t, err)
	})
}
