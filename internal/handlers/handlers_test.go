package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/handlers/auth"
	"github.com/talmaprime/teaops/internal/handlers/cash"
	"github.com/talmaprime/teaops/internal/handlers/people"
	"github.com/talmaprime/teaops/internal/handlers/reports"
	"github.com/talmaprime/teaops/internal/handlers/timesheets"
	"github.com/talmaprime/teaops/internal/handlers/users"
	"github.com/talmaprime/teaops/internal/service"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockService(ctrl),
		UsersService:      users.NewMockService(ctrl),
		CashService:       cash.NewMockService(ctrl),
		PeopleService:     people.NewMockService(ctrl),
		TimesheetsService: timesheets.NewMockService(ctrl),
		ReportsService:    reports.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewJWTService("secret", time.Hour))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUsersHandler := NewMockUsersHandler(ctrl)
	mockCashHandler := NewMockCashHandler(ctrl)
	mockPeopleHandler := NewMockPeopleHandler(ctrl)
	mockTimesheetsHandler := NewMockTimesheetsHandler(ctrl)
	mockReportsHandler := NewMockReportsHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().GetMonth(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCashHandler.EXPECT().DownloadVoucher(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().Add(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().UpdateRate(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().ApproveRate(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().UpdateSalary(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().ApproveSalary(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().MarkLeft(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeopleHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().GetDay(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().SaveDay(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().GetGrid(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()
	mockTimesheetsHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().ExportDaily(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().ExportPeople(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().ExportTimesheets(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().ExportMatrix(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportsHandler.EXPECT().ExportSummary(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := pkgauth.NewJWTService("test-secret", time.Hour)

	tokens := make(map[domain.Role]string)
	for i, role := range []domain.Role{domain.RoleAdmin, domain.RoleMD, domain.RoleManager, domain.RoleDataEntry} {
		token, err := jwtService.GenerateJWT(i+1, role)
		assert.NoError(t, err)
		tokens[role] = token
	}

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		UsersHandler:      mockUsersHandler,
		CashHandler:       mockCashHandler,
		PeopleHandler:     mockPeopleHandler,
		TimesheetsHandler: mockTimesheetsHandler,
		ReportsHandler:    mockReportsHandler,
		jwtService:        jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		role   domain.Role
		status int
	}{
		{"POST", "/api/login", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/api/cash", "", http.StatusUnauthorized},
		{"GET", "/api/cash", domain.RoleDataEntry, http.StatusOK},
		{"POST", "/api/cash", domain.RoleDataEntry, http.StatusOK},
		{"GET", "/api/cash/vouchers/20250607_101500_bill.pdf", domain.RoleManager, http.StatusOK},
		{"POST", "/api/cash/7/approve", domain.RoleDataEntry, http.StatusForbidden},
		{"POST", "/api/cash/7/approve", domain.RoleManager, http.StatusForbidden},
		{"POST", "/api/cash/7/approve", domain.RoleMD, http.StatusOK},
		{"POST", "/api/cash/7/reset", domain.RoleAdmin, http.StatusOK},
		{"DELETE", "/api/cash/7", domain.RoleAdmin, http.StatusOK},
		{"GET", "/api/people", domain.RoleDataEntry, http.StatusForbidden},
		{"GET", "/api/people", domain.RoleManager, http.StatusOK},
		{"POST", "/api/people", domain.RoleManager, http.StatusOK},
		{"POST", "/api/people/workers/3/rate", domain.RoleManager, http.StatusForbidden},
		{"POST", "/api/people/workers/3/rate", domain.RoleMD, http.StatusOK},
		{"POST", "/api/people/workers/3/rate/approve", domain.RoleAdmin, http.StatusOK},
		{"POST", "/api/people/staff/2/salary", domain.RoleMD, http.StatusOK},
		{"POST", "/api/people/staff/2/salary/approve", domain.RoleAdmin, http.StatusOK},
		{"POST", "/api/people/workers/3/leave", domain.RoleManager, http.StatusForbidden},
		{"DELETE", "/api/people/workers/3", domain.RoleManager, http.StatusForbidden},
		{"DELETE", "/api/people/staff/2", domain.RoleMD, http.StatusOK},
		{"GET", "/api/timesheets", domain.RoleDataEntry, http.StatusForbidden},
		{"GET", "/api/timesheets", domain.RoleManager, http.StatusOK},
		{"POST", "/api/timesheets", domain.RoleManager, http.StatusOK},
		{"GET", "/api/timesheets/grid", domain.RoleManager, http.StatusOK},
		{"POST", "/api/timesheets/9/approve", domain.RoleManager, http.StatusForbidden},
		{"POST", "/api/timesheets/9/approve", domain.RoleMD, http.StatusOK},
		{"POST", "/api/timesheets/9/reset", domain.RoleAdmin, http.StatusOK},
		{"DELETE", "/api/timesheets/9", domain.RoleMD, http.StatusOK},
		{"POST", "/api/users", domain.RoleManager, http.StatusForbidden},
		{"POST", "/api/users", domain.RoleMD, http.StatusOK},
		{"GET", "/api/users", domain.RoleAdmin, http.StatusOK},
		{"DELETE", "/api/users/4", domain.RoleMD, http.StatusOK},
		{"POST", "/api/password", domain.RoleDataEntry, http.StatusOK},
		{"GET", "/api/summary", domain.RoleDataEntry, http.StatusOK},
		{"GET", "/api/exports/daily", domain.RoleDataEntry, http.StatusOK},
		{"GET", "/api/exports/people", domain.RoleManager, http.StatusOK},
		{"GET", "/api/exports/timesheets", domain.RoleDataEntry, http.StatusOK},
		{"GET", "/api/exports/timesheets_matrix", domain.RoleManager, http.StatusOK},
		{"GET", "/api/exports/summary", domain.RoleMD, http.StatusOK},
	}

	for _, tt := range tests {
		name := tt.method + " " + tt.url
		if tt.role != "" {
			name += " as " + string(tt.role)
		}
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.role != "" {
				req.Header.Set("Authorization", "Bearer "+tokens[tt.role])
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
