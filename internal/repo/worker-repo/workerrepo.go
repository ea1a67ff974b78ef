package workerrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	query := `
        INSERT INTO workers (name, join_date, note, active, hourly_rate, approved_hourly_rate)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		worker.Name, worker.JoinDate, worker.Note, worker.Active,
		worker.HourlyRate, worker.ApprovedHourlyRate,
	).Scan(&worker.ID)
	if err != nil {
		zap.L().Error("can't save worker", zap.Error(err))
		return nil, err
	}
	return worker, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Worker, error) {
	query := `
        SELECT id, name, join_date, leave_date, note, active, hourly_rate, approved_hourly_rate
        FROM workers
        ORDER BY active DESC, name
    `
	return r.queryWorkers(ctx, query)
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Worker, error) {
	query := `
        SELECT id, name, join_date, leave_date, note, active, hourly_rate, approved_hourly_rate
        FROM workers
        WHERE active
        ORDER BY name
    `
	return r.queryWorkers(ctx, query)
}

func (r *Repository) queryWorkers(ctx context.Context, query string) ([]domain.Worker, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get workers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		var w domain.Worker
		err := rows.Scan(&w.ID, &w.Name, &w.JoinDate, &w.LeaveDate, &w.Note, &w.Active, &w.HourlyRate, &w.ApprovedHourlyRate)
		if err != nil {
			zap.L().Error("can't scan worker row", zap.Error(err))
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, nil
}

// UpdateRate stores the new rate and drops the approved one back to
// zero until management signs it off again.
func (r *Repository) UpdateRate(ctx context.Context, id int, rate float64) error {
	query := `
        UPDATE workers
        SET hourly_rate = $1, approved_hourly_rate = 0
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, rate, id)
	if err != nil {
		zap.L().Error("can't update hourly rate", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ApproveRate(ctx context.Context, id int) error {
	query := `
        UPDATE workers
        SET approved_hourly_rate = hourly_rate
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't approve hourly rate", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkLeft(ctx context.Context, id int, leaveDate time.Time) error {
	query := `
        UPDATE workers
        SET active = false, leave_date = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, leaveDate, id)
	if err != nil {
		zap.L().Error("can't mark worker as left", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM workers WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete worker", zap.Error(err))
		return err
	}
	return nil
}
