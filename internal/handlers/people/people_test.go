package people

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/utils"
)

func NewMock(t *testing.T) (*PeopleHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	left := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	approved := 18000.0

	t.Run("Successful list", func(t *testing.T) {
		service.EXPECT().ListWorkers(context.Background()).Return([]domain.Worker{
			{ID: 4, Name: "Ayesha Begum", JoinDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Active: true, HourlyRate: 55, ApprovedHourlyRate: 50},
			{ID: 5, Name: "Left Worker", JoinDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), LeaveDate: &left, Active: false, HourlyRate: 40},
		}, nil)
		service.EXPECT().ListStaff(context.Background()).Return([]domain.Staff{
			{ID: 2, Name: "Kamal Hossain", Position: "Accountant", Salary: 18000, ApprovedSalary: &approved, JoinDate: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Name: "Rina Das", Position: "Clerk", Salary: 12000, JoinDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

		req := httptest.NewRequest("GET", "/api/people", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Workers []struct {
				Name        string  `json:"name"`
				LeaveDate   string  `json:"leave_date"`
				WeeklyWages float64 `json:"weekly_wages"`
			} `json:"workers"`
			Staff []struct {
				Name           string   `json:"name"`
				ApprovedSalary *float64 `json:"approved_salary"`
			} `json:"staff"`
			TotalStaffSalary float64 `json:"total_staff_salary"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Workers, 2)
		assert.Equal(t, 2200.0, resp.Workers[0].WeeklyWages)
		assert.Empty(t, resp.Workers[0].LeaveDate)
		assert.Equal(t, "2025-05-31", resp.Workers[1].LeaveDate)
		assert.Equal(t, 30000.0, resp.TotalStaffSalary)
		assert.Nil(t, resp.Staff[1].ApprovedSalary)
	})

	t.Run("Workers error", func(t *testing.T) {
		service.EXPECT().ListWorkers(context.Background()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/people", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Staff error", func(t *testing.T) {
		service.EXPECT().ListWorkers(context.Background()).Return(nil, nil)
		service.EXPECT().ListStaff(context.Background()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/people", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAddHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Add a worker",
			body: `{"kind":"worker","name":"Ayesha Begum","join_date":"2025-05-01","hourly_rate":55,"note":"section 7"}`,
			prepareMock: func() {
				service.EXPECT().AddWorker(context.Background(), "Ayesha Begum", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 55.0, "section 7").
					Return(&domain.Worker{ID: 4}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Worker added.",
		},
		{
			name: "Add a worker without a join date",
			body: `{"kind":"worker","name":"Rahim Uddin","hourly_rate":45}`,
			prepareMock: func() {
				service.EXPECT().AddWorker(context.Background(), "Rahim Uddin", time.Time{}, 45.0, "").
					Return(&domain.Worker{ID: 5}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Worker added.",
		},
		{
			name: "Add a staff member",
			body: `{"kind":"staff","name":"Kamal Hossain","position":"Accountant","salary":18000,"join_date":"2024-11-01"}`,
			prepareMock: func() {
				service.EXPECT().AddStaff(context.Background(), "Kamal Hossain", "Accountant", 18000.0, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)).
					Return(&domain.Staff{ID: 2}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Staff added.",
		},
		{
			name:            "Invalid request body",
			body:            `{invalid json`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "Name is required",
			body:            `{"kind":"worker","name":"   "}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Name is required",
		},
		{
			name:            "Invalid join date",
			body:            `{"kind":"worker","name":"Ayesha Begum","join_date":"01/05/2025"}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid join date",
		},
		{
			name:            "Unknown kind",
			body:            `{"kind":"contractor","name":"Somebody"}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid kind",
		},
		{
			name: "Service error",
			body: `{"kind":"staff","name":"Kamal Hossain"}`,
			prepareMock: func() {
				service.EXPECT().AddStaff(context.Background(), "Kamal Hossain", "", 0.0, time.Time{}).
					Return(nil, errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/people", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Add(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestPayHandlers(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Post("/api/people/workers/{id}/rate", handler.UpdateRate)
	router.Post("/api/people/workers/{id}/rate/approve", handler.ApproveRate)
	router.Post("/api/people/staff/{id}/salary", handler.UpdateSalary)
	router.Post("/api/people/staff/{id}/salary/approve", handler.ApproveSalary)
	router.Post("/api/people/workers/{id}/leave", handler.MarkLeft)

	tests := []struct {
		name            string
		target          string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Update hourly rate",
			target: "/api/people/workers/4/rate",
			body:   `{"hourly_rate":60}`,
			prepareMock: func() {
				service.EXPECT().UpdateWorkerRate(gomock.Any(), 4, 60.0).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Hourly rate updated (pending approval).",
		},
		{
			name:            "Update hourly rate with invalid id",
			target:          "/api/people/workers/abc/rate",
			body:            `{"hourly_rate":60}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid worker id",
		},
		{
			name:   "Approve hourly rate",
			target: "/api/people/workers/4/rate/approve",
			prepareMock: func() {
				service.EXPECT().ApproveWorkerRate(gomock.Any(), 4).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Hourly rate approved.",
		},
		{
			name:   "Update salary",
			target: "/api/people/staff/2/salary",
			body:   `{"salary":20000}`,
			prepareMock: func() {
				service.EXPECT().UpdateStaffSalary(gomock.Any(), 2, 20000.0).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Salary updated (pending approval).",
		},
		{
			name:   "Approve salary",
			target: "/api/people/staff/2/salary/approve",
			prepareMock: func() {
				service.EXPECT().ApproveStaffSalary(gomock.Any(), 2).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Salary approved.",
		},
		{
			name:   "Mark worker as left",
			target: "/api/people/workers/4/leave",
			prepareMock: func() {
				service.EXPECT().MarkWorkerLeft(gomock.Any(), 4).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Worker marked as left.",
		},
		{
			name:   "Update hourly rate service error",
			target: "/api/people/workers/4/rate",
			body:   `{"hourly_rate":60}`,
			prepareMock: func() {
				service.EXPECT().UpdateWorkerRate(gomock.Any(), 4, 60.0).Return(errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", tt.target, bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Delete("/api/people/{kind}/{id}", handler.Delete)

	tests := []struct {
		name            string
		target          string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Delete a worker",
			target: "/api/people/worker/4",
			prepareMock: func() {
				service.EXPECT().DeleteWorker(gomock.Any(), 4).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Deleted.",
		},
		{
			name:   "Delete a staff member",
			target: "/api/people/staff/2",
			prepareMock: func() {
				service.EXPECT().DeleteStaff(gomock.Any(), 2).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Deleted.",
		},
		{
			name:            "Unknown kind",
			target:          "/api/people/contractor/4",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid kind",
		},
		{
			name:            "Invalid person id",
			target:          "/api/people/worker/abc",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid person id",
		},
		{
			name:   "Service error",
			target: "/api/people/worker/4",
			prepareMock: func() {
				service.EXPECT().DeleteWorker(gomock.Any(), 4).Return(errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("DELETE", tt.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
