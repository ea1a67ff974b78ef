package peopleservice

import (
	"context"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"go.uber.org/zap"
)

type WorkerRepo interface {
	Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	UpdateRate(ctx context.Context, id int, rate float64) error
	ApproveRate(ctx context.Context, id int) error
	MarkLeft(ctx context.Context, id int, leaveDate time.Time) error
	Delete(ctx context.Context, id int) error
}
type StaffRepo interface {
	Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	UpdateSalary(ctx context.Context, id int, salary float64) error
	ApproveSalary(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
type Service struct {
	workerRepo WorkerRepo
	staffRepo  StaffRepo
}

func New(workerRepo WorkerRepo, staffRepo StaffRepo) *Service {
	return &Service{
		workerRepo: workerRepo,
		staffRepo:  staffRepo,
	}
}

// AddWorker registers a new field worker. The entered rate stays pending
// until an md or admin approves it, so the approved rate starts at zero.
func (s *Service) AddWorker(ctx context.Context, name string, joinDate time.Time, hourlyRate float64, note string) (*domain.Worker, error) {
	if joinDate.IsZero() {
		joinDate = time.Now()
	}
	worker := &domain.Worker{
		Name:               name,
		JoinDate:           joinDate,
		Note:               note,
		Active:             true,
		HourlyRate:         hourlyRate,
		ApprovedHourlyRate: 0,
	}
	created, err := s.workerRepo.Create(ctx, worker)
	if err != nil {
		zap.L().Error("can't create worker: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("worker added", zap.Int("workerID", created.ID), zap.String("name", name))
	return created, nil
}

// AddStaff registers a salaried staff member. The salary stays pending
// until approved.
func (s *Service) AddStaff(ctx context.Context, name, position string, salary float64, joinDate time.Time) (*domain.Staff, error) {
	if joinDate.IsZero() {
		joinDate = time.Now()
	}
	staff := &domain.Staff{
		Name:     name,
		Position: position,
		Salary:   salary,
		JoinDate: joinDate,
	}
	created, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		zap.L().Error("can't create staff: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("staff added", zap.Int("staffID", created.ID), zap.String("name", name))
	return created, nil
}

func (s *Service) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list workers: ", zap.Error(err))
		return nil, err
	}
	return workers, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list staff: ", zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (s *Service) UpdateWorkerRate(ctx context.Context, id int, rate float64) error {
	if err := s.workerRepo.UpdateRate(ctx, id, rate); err != nil {
		zap.L().Error("can't update hourly rate: ", zap.Error(err))
		return err
	}
	zap.L().Info("hourly rate updated", zap.Int("workerID", id), zap.Float64("rate", rate))
	return nil
}

func (s *Service) ApproveWorkerRate(ctx context.Context, id int) error {
	if err := s.workerRepo.ApproveRate(ctx, id); err != nil {
		zap.L().Error("can't approve hourly rate: ", zap.Error(err))
		return err
	}
	zap.L().Info("hourly rate approved", zap.Int("workerID", id))
	return nil
}

func (s *Service) UpdateStaffSalary(ctx context.Context, id int, salary float64) error {
	if err := s.staffRepo.UpdateSalary(ctx, id, salary); err != nil {
		zap.L().Error("can't update salary: ", zap.Error(err))
		return err
	}
	zap.L().Info("salary updated", zap.Int("staffID", id), zap.Float64("salary", salary))
	return nil
}

func (s *Service) ApproveStaffSalary(ctx context.Context, id int) error {
	if err := s.staffRepo.ApproveSalary(ctx, id); err != nil {
		zap.L().Error("can't approve salary: ", zap.Error(err))
		return err
	}
	zap.L().Info("salary approved", zap.Int("staffID", id))
	return nil
}

// MarkWorkerLeft deactivates a worker and records today as the leave date.
func (s *Service) MarkWorkerLeft(ctx context.Context, id int) error {
	if err := s.workerRepo.MarkLeft(ctx, id, time.Now()); err != nil {
		zap.L().Error("can't mark worker as left: ", zap.Error(err))
		return err
	}
	zap.L().Info("worker marked as left", zap.Int("workerID", id))
	return nil
}

func (s *Service) DeleteWorker(ctx context.Context, id int) error {
	if err := s.workerRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete worker: ", zap.Error(err))
		return err
	}
	zap.L().Info("worker deleted", zap.Int("workerID", id))
	return nil
}

func (s *Service) DeleteStaff(ctx context.Context, id int) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete staff: ", zap.Error(err))
		return err
	}
	zap.L().Info("staff deleted", zap.Int("staffID", id))
	return nil
}
