package cashrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	createdAt := time.Now()
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	entry := &domain.CashEntry{
		Date:          date,
		TotalKg:       120,
		AmountTk:      6000,
		GreenLeafBill: 1500,
		StaffSalary:   800,
		TotalCost:     2300,
		GrandTotal:    2300,
		CashReceive:   7000,
		NetCash:       7000,
		Note:          "leaf purchase",
		Status:        domain.StatusSubmitted,
		CreatedBy:     2,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create entry successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO daily_cash")).
						WithArgs(
							entry.Date, entry.TotalKg, entry.AmountTk, entry.GreenLeafBill,
							entry.StaffSalary, entry.LabourBill, entry.ProductionCost, entry.Coal, entry.Diesel,
							entry.Electricity, entry.OtherExp, entry.TotalCost,
							entry.CapitalCost, entry.Machineries, entry.AssetsPurchase, entry.Construction,
							entry.FixedCost, entry.GrandTotal,
							entry.CashReceive, entry.AddAmount, entry.LessAmount, entry.NetCash,
							entry.Note, entry.VoucherPath, entry.Status, entry.CreatedBy,
						).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO daily_cash")).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

func TestRepository_ListRange(t *testing.T) {
	repo, mock, _ := NewMock(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	columns := []string{
		"id", "date", "total_kg", "amount_tk", "green_leaf_bill_payment",
		"staff_salary", "labour_bill", "production_cost", "coal", "diesel", "electricity", "other_exp", "total_cost",
		"capital_cost", "machineries", "assets_purchase", "construction", "fixed_cost", "grand_total",
		"cash_receive", "add_amount", "less_amount", "net_cash",
		"note", "voucher_path", "status", "created_by", "approved_by", "approved_at", "created_at",
	}

	t.Run("returns entries in order", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(
				1, start, 100.0, 5000.0, 1200.0,
				700.0, 300.0, 150.0, 90.0, 60.0, 45.0, 20.0, 2565.0,
				0.0, 0.0, 0.0, 0.0, 0.0, 2565.0,
				6000.0, 0.0, 0.0, 6000.0,
				"first", nil, domain.StatusSubmitted, 2, nil, nil, createdAt,
			)
		mock.ExpectQuery(regexp.QuoteMeta("FROM daily_cash WHERE date BETWEEN $1 AND $2 ORDER BY date ASC, id ASC")).
			WithArgs(start, end).
			WillReturnRows(rows)

		entries, err := repo.ListRange(context.Background(), start, end)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].ID)
		assert.Equal(t, 2565.0, entries[0].TotalCost)
		assert.Nil(t, entries[0].VoucherPath)
		assert.Nil(t, entries[0].ApprovedBy)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM daily_cash")).
			WithArgs(start, end).
			WillReturnError(errors.New("database error"))

		entries, err := repo.ListRange(context.Background(), start, end)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestRepository_SumRange(t *testing.T) {
	repo, mock, _ := NewMock(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("returns totals", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{
			"total_kg", "amount_tk", "green_leaf_bill_payment",
			"staff_salary", "labour_bill", "production_cost", "coal", "diesel", "electricity", "other_exp", "total_cost",
			"capital_cost", "machineries", "assets_purchase", "construction", "fixed_cost", "grand_total",
			"cash_receive", "add_amount", "less_amount", "net_cash",
		}).AddRow(
			220.0, 11000.0, 2400.0,
			1400.0, 600.0, 300.0, 180.0, 120.0, 90.0, 40.0, 5130.0,
			0.0, 0.0, 0.0, 0.0, 0.0, 5130.0,
			12000.0, 0.0, 0.0, 12000.0,
		)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_kg), 0)")).
			WithArgs(start, end).
			WillReturnRows(rows)

		totals, err := repo.SumRange(context.Background(), start, end)
		assert.NoError(t, err)
		assert.Equal(t, 220.0, totals.TotalKg)
		assert.Equal(t, 5130.0, totals.GrandTotal)
		assert.Equal(t, 12000.0, totals.NetCash)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_kg), 0)")).
			WithArgs(start, end).
			WillReturnError(errors.New("database error"))

		totals, err := repo.SumRange(context.Background(), start, end)
		assert.Error(t, err)
		assert.Nil(t, totals)
	})
}

func TestRepository_Summary(t *testing.T) {
	repo, mock, _ := NewMock(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("returns expenses and revenue", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"expenses", "revenue"}).AddRow(5130.0, 12000.0)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_cost + fixed_cost), 0)")).
			WithArgs(start, end).
			WillReturnRows(rows)

		s, err := repo.Summary(context.Background(), start, end)
		assert.NoError(t, err)
		assert.Equal(t, 5130.0, s.Expenses)
		assert.Equal(t, 12000.0, s.Revenue)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_cost + fixed_cost), 0)")).
			WithArgs(start, end).
			WillReturnError(errors.New("database error"))

		s, err := repo.Summary(context.Background(), start, end)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_UpdateApproval(t *testing.T) {
	repo, mock, _ := NewMock(t)
	approvedBy := 1
	approvedAt := time.Now()

	t.Run("approve", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE daily_cash SET status = $1, approved_by = $2, approved_at = $3 WHERE id = $4")).
			WithArgs(domain.StatusApproved, &approvedBy, &approvedAt, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateApproval(context.Background(), 7, domain.StatusApproved, &approvedBy, &approvedAt)
		assert.NoError(t, err)
	})

	t.Run("reset clears approval fields", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE daily_cash SET status = $1, approved_by = $2, approved_at = $3 WHERE id = $4")).
			WithArgs(domain.StatusSubmitted, (*int)(nil), (*time.Time)(nil), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateApproval(context.Background(), 7, domain.StatusSubmitted, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE daily_cash")).
			WithArgs(domain.StatusApproved, &approvedBy, &approvedAt, 7).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateApproval(context.Background(), 7, domain.StatusApproved, &approvedBy, &approvedAt)
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("deletes entry", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM daily_cash WHERE id = $1")).
			WithArgs(3).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(context.Background(), 3)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM daily_cash WHERE id = $1")).
			WithArgs(3).
			WillReturnError(errors.New("database error"))

		err := repo.Delete(context.Background(), 3)
		assert.Error(t, err)
	})
}
