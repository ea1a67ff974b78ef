package cashservice

import (
	"context"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/utils"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, entry *domain.CashEntry) (*domain.CashEntry, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.CashEntry, error)
	SumRange(ctx context.Context, start, end time.Time) (*domain.CashTotals, error)
	Summary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error)
	UpdateApproval(ctx context.Context, id int, status string, approvedBy *int, approvedAt *time.Time) error
	Delete(ctx context.Context, id int) error
}
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Open(stored string) ([]byte, error)
}
type Service struct {
	repo      Repo
	fileStore FileStore
}

func New(repo Repo, fileStore FileStore) *Service {
	return &Service{
		repo:      repo,
		fileStore: fileStore,
	}
}

// EntryInput carries one day's figures as entered. The derived columns
// are always recomputed on save and never accepted from the caller.
type EntryInput struct {
	Date           time.Time
	TotalKg        float64
	AmountTk       float64
	GreenLeafBill  float64
	StaffSalary    float64
	LabourBill     float64
	ProductionCost float64
	Coal           float64
	Diesel         float64
	Electricity    float64
	OtherExp       float64
	CapitalCost    float64
	Machineries    float64
	AssetsPurchase float64
	Construction   float64
	CashReceive    float64
	AddAmount      float64
	LessAmount     float64
	Note           string
	VoucherName    string
	VoucherData    []byte
}

// computeTotals fills the derived columns from the raw figures.
func computeTotals(e *domain.CashEntry) {
	e.TotalCost = e.GreenLeafBill + e.StaffSalary + e.LabourBill + e.ProductionCost +
		e.Coal + e.Diesel + e.Electricity + e.OtherExp
	e.FixedCost = e.CapitalCost + e.Machineries + e.AssetsPurchase + e.Construction
	e.GrandTotal = e.TotalCost + e.FixedCost
	e.NetCash = e.CashReceive + e.AddAmount - e.LessAmount
}

func (s *Service) CreateEntry(ctx context.Context, userID int, in EntryInput) (*domain.CashEntry, error) {
	entry := &domain.CashEntry{
		Date:           in.Date,
		TotalKg:        in.TotalKg,
		AmountTk:       in.AmountTk,
		GreenLeafBill:  in.GreenLeafBill,
		StaffSalary:    in.StaffSalary,
		LabourBill:     in.LabourBill,
		ProductionCost: in.ProductionCost,
		Coal:           in.Coal,
		Diesel:         in.Diesel,
		Electricity:    in.Electricity,
		OtherExp:       in.OtherExp,
		CapitalCost:    in.CapitalCost,
		Machineries:    in.Machineries,
		AssetsPurchase: in.AssetsPurchase,
		Construction:   in.Construction,
		CashReceive:    in.CashReceive,
		AddAmount:      in.AddAmount,
		LessAmount:     in.LessAmount,
		Note:           in.Note,
		Status:         domain.StatusSubmitted,
		CreatedBy:      userID,
	}
	computeTotals(entry)

	if len(in.VoucherData) > 0 {
		stored, err := s.fileStore.Save(in.VoucherName, in.VoucherData)
		if err != nil {
			zap.L().Error("can't save voucher: ", zap.Error(err))
			return nil, err
		}
		entry.VoucherPath = &stored
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		zap.L().Error("can't create cash entry: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("cash entry created", zap.Int("entryID", created.ID), zap.Time("date", created.Date))
	return created, nil
}

func (s *Service) GetMonth(ctx context.Context, year int, month time.Month) ([]domain.CashEntry, *domain.CashTotals, error) {
	start, end := utils.MonthRange(year, month)
	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't list cash entries: ", zap.Error(err))
		return nil, nil, err
	}
	totals, err := s.repo.SumRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't sum cash entries: ", zap.Error(err))
		return nil, nil, err
	}
	return entries, totals, nil
}

func (s *Service) GetRange(ctx context.Context, start, end time.Time) ([]domain.CashEntry, error) {
	entries, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't list cash entries: ", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetRangeSummary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error) {
	summary, err := s.repo.Summary(ctx, start, end)
	if err != nil {
		zap.L().Error("can't summarize cash entries: ", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (s *Service) Approve(ctx context.Context, id, approverID int) error {
	now := time.Now()
	if err := s.repo.UpdateApproval(ctx, id, domain.StatusApproved, &approverID, &now); err != nil {
		zap.L().Error("can't approve cash entry: ", zap.Error(err))
		return err
	}
	zap.L().Info("cash entry approved", zap.Int("entryID", id), zap.Int("approverID", approverID))
	return nil
}

// Reset returns an entry to submitted and clears the approval marks.
func (s *Service) Reset(ctx context.Context, id int) error {
	if err := s.repo.UpdateApproval(ctx, id, domain.StatusSubmitted, nil, nil); err != nil {
		zap.L().Error("can't reset cash entry: ", zap.Error(err))
		return err
	}
	zap.L().Info("cash entry reset", zap.Int("entryID", id))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete cash entry: ", zap.Error(err))
		return err
	}
	zap.L().Info("cash entry deleted", zap.Int("entryID", id))
	return nil
}

func (s *Service) OpenVoucher(name string) ([]byte, error) {
	data, err := s.fileStore.Open(name)
	if err != nil {
		zap.L().Error("can't open voucher: ", zap.Error(err))
		return nil, err
	}
	return data, nil
}
