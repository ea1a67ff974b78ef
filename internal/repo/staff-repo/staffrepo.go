package staffrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	query := `
        INSERT INTO staff (name, position, salary, approved_salary, join_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		staff.Name, staff.Position, staff.Salary, staff.ApprovedSalary, staff.JoinDate,
	).Scan(&staff.ID)
	if err != nil {
		zap.L().Error("can't save staff", zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Staff, error) {
	query := `
        SELECT id, name, position, salary, approved_salary, join_date, leave_date
        FROM staff
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get staff", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		var s domain.Staff
		err := rows.Scan(&s.ID, &s.Name, &s.Position, &s.Salary, &s.ApprovedSalary, &s.JoinDate, &s.LeaveDate)
		if err != nil {
			zap.L().Error("can't scan staff row", zap.Error(err))
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, nil
}

// UpdateSalary stores the new salary and clears the approved one until
// management signs it off again.
func (r *Repository) UpdateSalary(ctx context.Context, id int, salary float64) error {
	query := `
        UPDATE staff
        SET salary = $1, approved_salary = NULL
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, salary, id)
	if err != nil {
		zap.L().Error("can't update salary", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ApproveSalary(ctx context.Context, id int) error {
	query := `
        UPDATE staff
        SET approved_salary = salary
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't approve salary", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM staff WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete staff", zap.Error(err))
		return err
	}
	return nil
}
