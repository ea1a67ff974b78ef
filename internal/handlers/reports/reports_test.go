package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/service/reportservice"
	"github.com/talmaprime/teaops/pkg/utils"
	"github.com/talmaprime/teaops/pkg/xlsx"
)

func NewMock(t *testing.T) (*ReportsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedStart string
		expectedEnd   string
	}{
		{
			name:   "Explicit range",
			target: "/api/summary?start=2025-06-01&end=2025-06-15",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), day(2025, 6, 1), day(2025, 6, 15)).
					Return(&domain.RangeSummary{Expenses: 125000, Revenue: 98000}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedStart: "2025-06-01",
			expectedEnd:   "2025-06-15",
		},
		{
			name:   "Month argument",
			target: "/api/summary?month=2025-06",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).
					Return(&domain.RangeSummary{Expenses: 125000, Revenue: 98000}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedStart: "2025-06-01",
			expectedEnd:   "2025-06-30",
		},
		{
			name:   "Defaults to the current month",
			target: "/api/summary",
			prepareMock: func() {
				now := time.Now()
				start, end := utils.MonthRange(now.Year(), now.Month())
				service.EXPECT().Summary(gomock.Any(), start, end).
					Return(&domain.RangeSummary{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid range",
			target:       "/api/summary?start=01/06/2025&end=2025-06-15",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			target: "/api/summary?month=2025-06",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			handler.GetSummary(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedStart != "" {
				var resp struct {
					Start         string  `json:"start"`
					End           string  `json:"end"`
					TotalExpenses float64 `json:"total_expenses"`
					TotalRevenue  float64 `json:"total_revenue"`
				}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStart, resp.Start)
				assert.Equal(t, tt.expectedEnd, resp.End)
				assert.Equal(t, 125000.0, resp.TotalExpenses)
				assert.Equal(t, 98000.0, resp.TotalRevenue)
			}
		})
	}
}

func TestExportHandlers(t *testing.T) {
	handler, service := NewMock(t)

	file := &reportservice.File{
		Name:    "Daily_Inputs_2025-06-01_to_2025-06-30.xlsx",
		Content: []byte("workbook-bytes"),
	}

	tests := []struct {
		name        string
		target      string
		handlerFunc http.HandlerFunc
		prepareMock func()
	}{
		{
			name:        "Export daily",
			target:      "/api/exports/daily?month=2025-06",
			handlerFunc: handler.ExportDaily,
			prepareMock: func() {
				service.EXPECT().ExportDaily(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).Return(file, nil)
			},
		},
		{
			name:        "Export people",
			target:      "/api/exports/people?month=2025-06",
			handlerFunc: handler.ExportPeople,
			prepareMock: func() {
				service.EXPECT().ExportPeople(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).Return(file, nil)
			},
		},
		{
			name:        "Export matrix",
			target:      "/api/exports/timesheets_matrix?start=2025-06-01&end=2025-06-07",
			handlerFunc: handler.ExportMatrix,
			prepareMock: func() {
				service.EXPECT().ExportMatrix(gomock.Any(), day(2025, 6, 1), day(2025, 6, 7)).Return(file, nil)
			},
		},
		{
			name:        "Export summary",
			target:      "/api/exports/summary?month=2025-06",
			handlerFunc: handler.ExportSummary,
			prepareMock: func() {
				service.EXPECT().ExportSummary(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).Return(file, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			tt.handlerFunc(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, xlsx.ContentType, rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Header().Get("Content-Disposition"), file.Name)
			assert.Equal(t, "workbook-bytes", rr.Body.String())
		})
	}

	t.Run("Invalid range", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/exports/daily?month=June", nil)
		rr := httptest.NewRecorder()

		handler.ExportDaily(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().ExportDaily(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/exports/daily?month=2025-06", nil)
		rr := httptest.NewRecorder()

		handler.ExportDaily(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestExportTimesheetsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Single day export", func(t *testing.T) {
		service.EXPECT().ExportTimesheetsDay(gomock.Any(), day(2025, 6, 7)).Return(&reportservice.File{
			Name:    "Working_Hours_2025-06-07.xlsx",
			Content: []byte("day-workbook"),
		}, nil)

		req := httptest.NewRequest("GET", "/api/exports/timesheets?date=2025-06-07", nil)
		rr := httptest.NewRecorder()

		handler.ExportTimesheets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "Working_Hours_2025-06-07.xlsx")
	})

	t.Run("Range export", func(t *testing.T) {
		service.EXPECT().ExportTimesheetsRange(gomock.Any(), day(2025, 6, 1), day(2025, 6, 30)).Return(&reportservice.File{
			Name:    "Working_Hours_2025-06-01_to_2025-06-30.xlsx",
			Content: []byte("range-workbook"),
		}, nil)

		req := httptest.NewRequest("GET", "/api/exports/timesheets?month=2025-06", nil)
		rr := httptest.NewRecorder()

		handler.ExportTimesheets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "Working_Hours_2025-06-01_to_2025-06-30.xlsx")
	})

	t.Run("Invalid date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/exports/timesheets?date=07/06/2025", nil)
		rr := httptest.NewRecorder()

		handler.ExportTimesheets(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
