package repo

import (
	"github.com/talmaprime/teaops/internal/pg"
	cashrepo "github.com/talmaprime/teaops/internal/repo/cash-repo"
	staffrepo "github.com/talmaprime/teaops/internal/repo/staff-repo"
	timesheetrepo "github.com/talmaprime/teaops/internal/repo/timesheet-repo"
	userrepo "github.com/talmaprime/teaops/internal/repo/user-repo"
	workerrepo "github.com/talmaprime/teaops/internal/repo/worker-repo"
	"github.com/talmaprime/teaops/internal/service/authservice"
	"github.com/talmaprime/teaops/internal/service/cashservice"
	"github.com/talmaprime/teaops/internal/service/peopleservice"
	"github.com/talmaprime/teaops/internal/service/timesheetservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	CashRepo      cashservice.Repo
	WorkerRepo    peopleservice.WorkerRepo
	StaffRepo     peopleservice.StaffRepo
	TimesheetRepo timesheetservice.Repo
	// WorkerRoster is the same worker repository narrowed to the roster
	// lookup the timesheet service needs.
	WorkerRoster timesheetservice.WorkerRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	cashRepo := cashrepo.New(conn, txManager)
	workerRepo := workerrepo.New(conn)
	staffRepo := staffrepo.New(conn)
	timesheetRepo := timesheetrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:      userRepo,
		CashRepo:      cashRepo,
		WorkerRepo:    workerRepo,
		StaffRepo:     staffRepo,
		TimesheetRepo: timesheetRepo,
		WorkerRoster:  workerRepo,
	}
}
