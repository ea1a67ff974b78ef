package timesheetservice

import (
	"context"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/utils"
	"go.uber.org/zap"
)

type Repo interface {
	InsertDay(ctx context.Context, entries []domain.TimesheetEntry) error
	ListByDate(ctx context.Context, date time.Time) ([]domain.TimesheetEntry, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.TimesheetEntry, error)
	UpdateApproval(ctx context.Context, id int, status string, approvedBy *int, approvedAt *time.Time) error
	Delete(ctx context.Context, id int) error
}
type WorkerRepo interface {
	ListActive(ctx context.Context) ([]domain.Worker, error)
}
type Service struct {
	repo       Repo
	workerRepo WorkerRepo
}

func New(repo Repo, workerRepo WorkerRepo) *Service {
	return &Service{
		repo:       repo,
		workerRepo: workerRepo,
	}
}

// DayEntry is one worker's line on the day entry form.
type DayEntry struct {
	WorkerID int
	Hours    float64
	Note     string
}

// SaveDay records hours for one day. Lines for inactive workers and lines
// without positive hours are skipped; the rest go in as pending in a
// single transaction. Returns the number of rows written.
func (s *Service) SaveDay(ctx context.Context, userID int, date time.Time, entries []DayEntry) (int, error) {
	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't list active workers: ", zap.Error(err))
		return 0, err
	}
	active := make(map[int]struct{}, len(workers))
	for _, w := range workers {
		active[w.ID] = struct{}{}
	}

	rows := make([]domain.TimesheetEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := active[e.WorkerID]; !ok || e.Hours <= 0 {
			continue
		}
		rows = append(rows, domain.TimesheetEntry{
			Date:      date,
			WorkerID:  e.WorkerID,
			Hours:     e.Hours,
			Note:      e.Note,
			Status:    domain.StatusPending,
			CreatedBy: userID,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := s.repo.InsertDay(ctx, rows); err != nil {
		zap.L().Error("can't save timesheets: ", zap.Error(err))
		return 0, err
	}
	zap.L().Info("timesheets saved", zap.Time("date", date), zap.Int("count", len(rows)))
	return len(rows), nil
}

func (s *Service) GetDay(ctx context.Context, date time.Time) ([]domain.TimesheetEntry, error) {
	entries, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		zap.L().Error("can't list timesheets: ", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetRange(ctx context.Context, start, end time.Time) ([]domain.TimesheetEntry, error) {
	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't list timesheets: ", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// ListActiveWorkers returns the roster shown on the day entry form.
func (s *Service) ListActiveWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't list active workers: ", zap.Error(err))
		return nil, err
	}
	return workers, nil
}

func (s *Service) GetMonthlyGrid(ctx context.Context, year int, month time.Month) (*WeeklyGrid, error) {
	start, end := utils.MonthRange(year, month)
	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't list timesheets: ", zap.Error(err))
		return nil, err
	}
	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't list active workers: ", zap.Error(err))
		return nil, err
	}
	return BuildWeeklyGrid(year, month, workers, entries), nil
}

func (s *Service) GetRangeMatrix(ctx context.Context, start, end time.Time) (*DayMatrix, error) {
	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't list timesheets: ", zap.Error(err))
		return nil, err
	}
	return BuildDayMatrix(start, end, entries), nil
}

func (s *Service) Approve(ctx context.Context, id, approverID int) error {
	now := time.Now()
	if err := s.repo.UpdateApproval(ctx, id, domain.StatusApproved, &approverID, &now); err != nil {
		zap.L().Error("can't approve timesheet: ", zap.Error(err))
		return err
	}
	zap.L().Info("timesheet approved", zap.Int("timesheetID", id), zap.Int("approverID", approverID))
	return nil
}

// Reset returns a timesheet to pending and clears the approval marks.
func (s *Service) Reset(ctx context.Context, id int) error {
	if err := s.repo.UpdateApproval(ctx, id, domain.StatusPending, nil, nil); err != nil {
		zap.L().Error("can't reset timesheet: ", zap.Error(err))
		return err
	}
	zap.L().Info("timesheet reset", zap.Int("timesheetID", id))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete timesheet: ", zap.Error(err))
		return err
	}
	zap.L().Info("timesheet deleted", zap.Int("timesheetID", id))
	return nil
}
