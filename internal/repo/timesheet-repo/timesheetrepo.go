package timesheetrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// InsertDay stores a batch of entries for one day. The batch commits or
// rolls back as a whole.
func (r *Repository) InsertDay(ctx context.Context, entries []domain.TimesheetEntry) error {
	query := `
        INSERT INTO timesheets (date, worker_id, hours, note, status, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, e := range entries {
			_, err := r.db.Exec(ctx, query, e.Date, e.WorkerID, e.Hours, e.Note, e.Status, e.CreatedBy)
			if err != nil {
				zap.L().Error("can't save timesheet entry", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]domain.TimesheetEntry, error) {
	query := `
        SELECT t.id, t.date, t.worker_id, w.name, t.hours, t.note, t.status, t.created_by, t.approved_by, t.approved_at
        FROM timesheets t
        JOIN workers w ON w.id = t.worker_id
        WHERE t.date = $1
        ORDER BY w.name
    `
	return r.queryEntries(ctx, query, date)
}

func (r *Repository) ListRange(ctx context.Context, start, end time.Time) ([]domain.TimesheetEntry, error) {
	query := `
        SELECT t.id, t.date, t.worker_id, w.name, t.hours, t.note, t.status, t.created_by, t.approved_by, t.approved_at
        FROM timesheets t
        JOIN workers w ON w.id = t.worker_id
        WHERE t.date BETWEEN $1 AND $2
        ORDER BY t.date, w.name, t.id
    `
	return r.queryEntries(ctx, query, start, end)
}

func (r *Repository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.TimesheetEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get timesheet entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimesheetEntry
	for rows.Next() {
		var e domain.TimesheetEntry
		err := rows.Scan(&e.ID, &e.Date, &e.WorkerID, &e.WorkerName, &e.Hours, &e.Note, &e.Status, &e.CreatedBy, &e.ApprovedBy, &e.ApprovedAt)
		if err != nil {
			zap.L().Error("can't scan timesheet row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) UpdateApproval(ctx context.Context, id int, status string, approvedBy *int, approvedAt *time.Time) error {
	query := `
        UPDATE timesheets
        SET status = $1, approved_by = $2, approved_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, approvedBy, approvedAt, id)
	if err != nil {
		zap.L().Error("can't update timesheet approval", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM timesheets WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete timesheet entry", zap.Error(err))
		return err
	}
	return nil
}
