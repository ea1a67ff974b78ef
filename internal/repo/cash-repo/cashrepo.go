package cashrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.CashEntry) (*domain.CashEntry, error) {
	query := `
        INSERT INTO daily_cash (
            date, total_kg, amount_tk, green_leaf_bill_payment,
            staff_salary, labour_bill, production_cost, coal, diesel, electricity, other_exp, total_cost,
            capital_cost, machineries, assets_purchase, construction, fixed_cost, grand_total,
            cash_receive, add_amount, less_amount, net_cash,
            note, voucher_path, status, created_by
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
            $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
        )
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			entry.Date, entry.TotalKg, entry.AmountTk, entry.GreenLeafBill,
			entry.StaffSalary, entry.LabourBill, entry.ProductionCost, entry.Coal, entry.Diesel,
			entry.Electricity, entry.OtherExp, entry.TotalCost,
			entry.CapitalCost, entry.Machineries, entry.AssetsPurchase, entry.Construction,
			entry.FixedCost, entry.GrandTotal,
			entry.CashReceive, entry.AddAmount, entry.LessAmount, entry.NetCash,
			entry.Note, entry.VoucherPath, entry.Status, entry.CreatedBy,
		).Scan(&entry.ID, &entry.CreatedAt)
	})
	if err != nil {
		zap.L().Error("can't save cash entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListRange(ctx context.Context, start, end time.Time) ([]domain.CashEntry, error) {
	query := `
        SELECT
            id, date, total_kg, amount_tk, green_leaf_bill_payment,
            staff_salary, labour_bill, production_cost, coal, diesel, electricity, other_exp, total_cost,
            capital_cost, machineries, assets_purchase, construction, fixed_cost, grand_total,
            cash_receive, add_amount, less_amount, net_cash,
            note, voucher_path, status, created_by, approved_by, approved_at, created_at
        FROM daily_cash
        WHERE date BETWEEN $1 AND $2
        ORDER BY date ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		zap.L().Error("can't get cash entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CashEntry
	for rows.Next() {
		var e domain.CashEntry
		err := rows.Scan(
			&e.ID, &e.Date, &e.TotalKg, &e.AmountTk, &e.GreenLeafBill,
			&e.StaffSalary, &e.LabourBill, &e.ProductionCost, &e.Coal, &e.Diesel,
			&e.Electricity, &e.OtherExp, &e.TotalCost,
			&e.CapitalCost, &e.Machineries, &e.AssetsPurchase, &e.Construction,
			&e.FixedCost, &e.GrandTotal,
			&e.CashReceive, &e.AddAmount, &e.LessAmount, &e.NetCash,
			&e.Note, &e.VoucherPath, &e.Status, &e.CreatedBy, &e.ApprovedBy, &e.ApprovedAt, &e.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan cash entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) SumRange(ctx context.Context, start, end time.Time) (*domain.CashTotals, error) {
	query := `
        SELECT
            COALESCE(SUM(total_kg), 0),
            COALESCE(SUM(amount_tk), 0),
            COALESCE(SUM(green_leaf_bill_payment), 0),
            COALESCE(SUM(staff_salary), 0),
            COALESCE(SUM(labour_bill), 0),
            COALESCE(SUM(production_cost), 0),
            COALESCE(SUM(coal), 0),
            COALESCE(SUM(diesel), 0),
            COALESCE(SUM(electricity), 0),
            COALESCE(SUM(other_exp), 0),
            COALESCE(SUM(total_cost), 0),
            COALESCE(SUM(capital_cost), 0),
            COALESCE(SUM(machineries), 0),
            COALESCE(SUM(assets_purchase), 0),
            COALESCE(SUM(construction), 0),
            COALESCE(SUM(fixed_cost), 0),
            COALESCE(SUM(grand_total), 0),
            COALESCE(SUM(cash_receive), 0),
            COALESCE(SUM(add_amount), 0),
            COALESCE(SUM(less_amount), 0),
            COALESCE(SUM(net_cash), 0)
        FROM daily_cash
        WHERE date BETWEEN $1 AND $2
    `
	var t domain.CashTotals
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&t.TotalKg, &t.AmountTk, &t.GreenLeafBill,
		&t.StaffSalary, &t.LabourBill, &t.ProductionCost, &t.Coal, &t.Diesel,
		&t.Electricity, &t.OtherExp, &t.TotalCost,
		&t.CapitalCost, &t.Machineries, &t.AssetsPurchase, &t.Construction,
		&t.FixedCost, &t.GrandTotal,
		&t.CashReceive, &t.AddAmount, &t.LessAmount, &t.NetCash,
	)
	if err != nil {
		zap.L().Error("can't sum cash entries", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Summary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error) {
	query := `
        SELECT
            COALESCE(SUM(total_cost + fixed_cost), 0) AS expenses,
            COALESCE(SUM(cash_receive + add_amount - less_amount), 0) AS revenue
        FROM daily_cash
        WHERE date BETWEEN $1 AND $2
    `
	var s domain.RangeSummary
	err := r.db.QueryRow(ctx, query, start, end).Scan(&s.Expenses, &s.Revenue)
	if err != nil {
		zap.L().Error("can't build cash summary", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateApproval(ctx context.Context, id int, status string, approvedBy *int, approvedAt *time.Time) error {
	query := `
        UPDATE daily_cash
        SET status = $1, approved_by = $2, approved_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, approvedBy, approvedAt, id)
	if err != nil {
		zap.L().Error("can't update cash entry approval", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM daily_cash WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete cash entry", zap.Error(err))
		return err
	}
	return nil
}
