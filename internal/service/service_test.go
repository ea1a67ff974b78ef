package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/repo"
	"github.com/talmaprime/teaops/internal/service/authservice"
	"github.com/talmaprime/teaops/internal/service/cashservice"
	"github.com/talmaprime/teaops/internal/service/peopleservice"
	"github.com/talmaprime/teaops/internal/service/timesheetservice"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockCashRepo := cashservice.NewMockRepo(ctrl)
	mockFileStore := cashservice.NewMockFileStore(ctrl)
	mockWorkerRepo := peopleservice.NewMockWorkerRepo(ctrl)
	mockStaffRepo := peopleservice.NewMockStaffRepo(ctrl)
	mockTimesheetRepo := timesheetservice.NewMockRepo(ctrl)
	mockRosterRepo := timesheetservice.NewMockWorkerRepo(ctrl)

	repos := &repo.Repositories{
		UserRepo:      mockUserRepo,
		CashRepo:      mockCashRepo,
		WorkerRepo:    mockWorkerRepo,
		StaffRepo:     mockStaffRepo,
		TimesheetRepo: mockTimesheetRepo,
		WorkerRoster:  mockRosterRepo,
	}

	services := New(repos, mockFileStore, pkgauth.NewJWTService("secret", time.Hour))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UsersService)
	assert.NotNil(t, services.CashService)
	assert.NotNil(t, services.PeopleService)
	assert.NotNil(t, services.TimesheetsService)
	assert.NotNil(t, services.ReportsService)
}
