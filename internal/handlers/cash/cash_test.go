package cash

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/service/cashservice"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
	"github.com/talmaprime/teaops/pkg/utils"
)

func NewMock(t *testing.T) (*CashHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func multipartBody(t *testing.T, fields map[string]string, voucherName string, voucherData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if voucherName != "" {
		fw, err := mw.CreateFormFile("voucher", voucherName)
		require.NoError(t, err)
		_, err = fw.Write(voucherData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful creation", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{
			"date":                    "2025-06-07",
			"total_kg":                "1450",
			"amount_tk":               "52000",
			"green_leaf_bill_payment": "12000",
			"coal":                    "",
			"note":                    "  factory run day  ",
		}, "", nil)

		service.EXPECT().CreateEntry(gomock.Any(), 3, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, in cashservice.EntryInput) (*domain.CashEntry, error) {
				assert.Equal(t, "2025-06-07", utils.FormatDate(in.Date))
				assert.Equal(t, 1450.0, in.TotalKg)
				assert.Equal(t, 52000.0, in.AmountTk)
				assert.Equal(t, 12000.0, in.GreenLeafBill)
				assert.Equal(t, 0.0, in.Coal)
				assert.Equal(t, "factory run day", in.Note)
				assert.Empty(t, in.VoucherData)
				return &domain.CashEntry{ID: 12}, nil
			})

		req := httptest.NewRequest("POST", "/api/cash", body)
		req.Header.Set("Content-Type", contentType)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 3)
		rr := httptest.NewRecorder()

		handler.Create(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Message string `json:"message"`
			ID      int    `json:"id"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Saved (awaiting MD/Admin approval).", resp.Message)
		assert.Equal(t, 12, resp.ID)
	})

	t.Run("With voucher file", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{
			"date": "2025-06-07",
		}, "bill.pdf", []byte("%PDF-1.4 voucher"))

		service.EXPECT().CreateEntry(gomock.Any(), 3, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, in cashservice.EntryInput) (*domain.CashEntry, error) {
				assert.Equal(t, "bill.pdf", in.VoucherName)
				assert.Equal(t, []byte("%PDF-1.4 voucher"), in.VoucherData)
				return &domain.CashEntry{ID: 13}, nil
			})

		req := httptest.NewRequest("POST", "/api/cash", body)
		req.Header.Set("Content-Type", contentType)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 3)
		rr := httptest.NewRecorder()

		handler.Create(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid date", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"date": "07/06/2025"}, "", nil)

		req := httptest.NewRequest("POST", "/api/cash", body)
		req.Header.Set("Content-Type", contentType)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 3)
		rr := httptest.NewRecorder()

		handler.Create(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Not a multipart form", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/cash", bytes.NewReader([]byte(`{"date":"2025-06-07"}`)))
		req.Header.Set("Content-Type", "application/json")
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 3)
		rr := httptest.NewRecorder()

		handler.Create(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"date": "2025-06-07"}, "", nil)

		service.EXPECT().CreateEntry(gomock.Any(), 3, gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("POST", "/api/cash", body)
		req.Header.Set("Content-Type", contentType)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 3)
		rr := httptest.NewRecorder()

		handler.Create(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetMonthHandler(t *testing.T) {
	handler, service := NewMock(t)

	entries := []domain.CashEntry{
		{ID: 1, Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), TotalKg: 1450, GrandTotal: 39300, Status: domain.StatusSubmitted},
	}
	totals := &domain.CashTotals{TotalKg: 1450, GrandTotal: 39300, NetCash: 43800}

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful month view",
			target: "/api/cash?month=2025-06",
			prepareMock: func() {
				service.EXPECT().GetMonth(gomock.Any(), 2025, time.June).Return(entries, totals, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Defaults to the current month",
			target: "/api/cash",
			prepareMock: func() {
				now := time.Now()
				service.EXPECT().GetMonth(gomock.Any(), now.Year(), now.Month()).Return(nil, &domain.CashTotals{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid month",
			target:        "/api/cash?month=June-2025",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid month",
		},
		{
			name:   "Service error",
			target: "/api/cash?month=2025-06",
			prepareMock: func() {
				service.EXPECT().GetMonth(gomock.Any(), 2025, time.June).Return(nil, nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			handler.GetMonth(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.name == "Successful month view" {
				var resp struct {
					Month   string `json:"month"`
					Entries []struct {
						Date   string  `json:"date"`
						Kg     float64 `json:"total_kg"`
						Status string  `json:"status"`
					} `json:"entries"`
					Totals struct {
						NetCash float64 `json:"net_cash"`
					} `json:"totals"`
				}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "2025-06", resp.Month)
				assert.Len(t, resp.Entries, 1)
				assert.Equal(t, "2025-06-07", resp.Entries[0].Date)
				assert.Equal(t, 1450.0, resp.Entries[0].Kg)
				assert.Equal(t, "submitted", resp.Entries[0].Status)
				assert.Equal(t, 43800.0, resp.Totals.NetCash)
			}
		})
	}
}

func TestApprovalHandlers(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Post("/api/cash/{id}/approve", handler.Approve)
	router.Post("/api/cash/{id}/reset", handler.Reset)
	router.Delete("/api/cash/{id}", handler.Delete)

	tests := []struct {
		name          string
		method        string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Approve entry",
			method: "POST",
			target: "/api/cash/12/approve",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 12, 2).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Approve with invalid id",
			method:        "POST",
			target:        "/api/cash/abc/approve",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid entry id",
		},
		{
			name:   "Reset entry",
			method: "POST",
			target: "/api/cash/12/reset",
			prepareMock: func() {
				service.EXPECT().Reset(gomock.Any(), 12).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Delete entry",
			method: "DELETE",
			target: "/api/cash/12",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 12).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Approve service error",
			method: "POST",
			target: "/api/cash/12/approve",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 12, 2).Return(errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 2)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDownloadVoucherHandler(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Get("/api/cash/vouchers/{name}", handler.DownloadVoucher)

	t.Run("Successful download", func(t *testing.T) {
		service.EXPECT().OpenVoucher("20250607_101500_bill.pdf").Return([]byte("%PDF-1.4 voucher"), nil)

		req := httptest.NewRequest("GET", "/api/cash/vouchers/20250607_101500_bill.pdf", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "20250607_101500_bill.pdf")
		assert.Equal(t, "%PDF-1.4 voucher", rr.Body.String())
	})

	t.Run("Voucher not found", func(t *testing.T) {
		service.EXPECT().OpenVoucher("missing.pdf").Return(nil, errors.New("no such file"))

		req := httptest.NewRequest("GET", "/api/cash/vouchers/missing.pdf", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
