package service

import (
	"github.com/talmaprime/teaops/internal/handlers/auth"
	"github.com/talmaprime/teaops/internal/handlers/cash"
	"github.com/talmaprime/teaops/internal/handlers/people"
	"github.com/talmaprime/teaops/internal/handlers/reports"
	"github.com/talmaprime/teaops/internal/handlers/timesheets"
	"github.com/talmaprime/teaops/internal/handlers/users"

	pkgauth "github.com/talmaprime/teaops/pkg/auth"

	"github.com/talmaprime/teaops/internal/repo"
	authservice "github.com/talmaprime/teaops/internal/service/authservice"
	cashservice "github.com/talmaprime/teaops/internal/service/cashservice"
	peopleservice "github.com/talmaprime/teaops/internal/service/peopleservice"
	reportservice "github.com/talmaprime/teaops/internal/service/reportservice"
	timesheetservice "github.com/talmaprime/teaops/internal/service/timesheetservice"
)

type Services struct {
	AuthService       auth.Service
	UsersService      users.Service
	CashService       cash.Service
	PeopleService     people.Service
	TimesheetsService timesheets.Service
	ReportsService    reports.Service
}

func New(repo *repo.Repositories, fileStore cashservice.FileStore, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	cashService := cashservice.New(repo.CashRepo, fileStore)
	peopleService := peopleservice.New(repo.WorkerRepo, repo.StaffRepo)
	timesheetService := timesheetservice.New(repo.TimesheetRepo, repo.WorkerRoster)
	reportService := reportservice.New(cashService, peopleService, timesheetService)

	return &Services{
		AuthService:       authService,
		UsersService:      authService,
		CashService:       cashService,
		PeopleService:     peopleService,
		TimesheetsService: timesheetService,
		ReportsService:    reportService,
	}
}
