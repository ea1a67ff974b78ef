package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestConn_Direct(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	db := New(mock)

	mock.ExpectExec("UPDATE workers").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	_, err = db.Exec(context.Background(), "UPDATE workers SET active = false")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTXManager_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	db := New(mock)
	txm := NewTXManager(mock)

	t.Run("commits when fn succeeds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO timesheets").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := txm.Begin(context.Background(), func(ctx context.Context) error {
			_, execErr := db.Exec(ctx, "INSERT INTO timesheets (worker_id) VALUES ($1)", 1)
			return execErr
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		wantErr := errors.New("boom")
		err := txm.Begin(context.Background(), func(ctx context.Context) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		err := txm.Begin(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
