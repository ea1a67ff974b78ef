package reportservice

import (
	"context"
	"fmt"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/service/timesheetservice"
	"github.com/talmaprime/teaops/pkg/utils"
	"github.com/talmaprime/teaops/pkg/xlsx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CashService interface {
	GetRange(ctx context.Context, start, end time.Time) ([]domain.CashEntry, error)
	GetRangeSummary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error)
}
type PeopleService interface {
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
}
type TimesheetService interface {
	GetDay(ctx context.Context, date time.Time) ([]domain.TimesheetEntry, error)
	GetRange(ctx context.Context, start, end time.Time) ([]domain.TimesheetEntry, error)
	GetRangeMatrix(ctx context.Context, start, end time.Time) (*timesheetservice.DayMatrix, error)
}
type Service struct {
	cashService      CashService
	peopleService    PeopleService
	timesheetService TimesheetService
}

func New(cashService CashService, peopleService PeopleService, timesheetService TimesheetService) *Service {
	return &Service{
		cashService:      cashService,
		peopleService:    peopleService,
		timesheetService: timesheetService,
	}
}

// File is a rendered export ready to stream to the client.
type File struct {
	Name    string
	Content []byte
}

func (s *Service) Summary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error) {
	summary, err := s.cashService.GetRangeSummary(ctx, start, end)
	if err != nil {
		zap.L().Error("can't build summary: ", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (s *Service) ExportDaily(ctx context.Context, start, end time.Time) (*File, error) {
	entries, err := s.cashService.GetRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't export daily entries: ", zap.Error(err))
		return nil, err
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			utils.FormatDate(e.Date), e.TotalKg, e.AmountTk, e.GreenLeafBill, e.StaffSalary, e.LabourBill,
			e.ProductionCost, e.Coal, e.Diesel, e.Electricity, e.OtherExp, e.TotalCost,
			e.CapitalCost, e.Machineries, e.AssetsPurchase, e.Construction, e.FixedCost, e.GrandTotal,
			e.CashReceive, e.AddAmount, e.LessAmount, e.NetCash, e.Note, e.Status,
		})
	}

	content, err := xlsx.Build(xlsx.Sheet{
		Name: "Daily Inputs",
		Header: []string{
			"Date", "Total Kg", "Amount", "GL pay", "Staff", "Labour", "Prod cost", "Coal", "Diesel",
			"Electricity", "Other", "Total cost", "Capital", "Machineries", "Assets", "Construction",
			"Fixed cost", "Grand total", "Cash receive", "Add", "Less", "Net cash", "Note", "Status",
		},
		Rows: rows,
	})
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("Daily_Inputs_%s_to_%s.xlsx", utils.FormatDate(start), utils.FormatDate(end))
	return &File{Name: name, Content: content}, nil
}

func (s *Service) ExportPeople(ctx context.Context, start, end time.Time) (*File, error) {
	var (
		workers []domain.Worker
		staff   []domain.Staff
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workers, err = s.peopleService.ListWorkers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = s.peopleService.ListStaff(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't export people: ", zap.Error(err))
		return nil, err
	}

	workerRows := make([][]any, 0, len(workers))
	for _, w := range workers {
		active := "No"
		if w.Active {
			active = "Yes"
		}
		workerRows = append(workerRows, []any{
			w.Name, utils.FormatDate(w.JoinDate), formatOptionalDate(w.LeaveDate), active, w.Note,
		})
	}
	staffRows := make([][]any, 0, len(staff))
	for _, m := range staff {
		staffRows = append(staffRows, []any{
			m.Name, m.Position, m.Salary, utils.FormatDate(m.JoinDate), formatOptionalDate(m.LeaveDate),
		})
	}

	content, err := xlsx.Build(
		xlsx.Sheet{
			Name:   "Workers",
			Header: []string{"Name", "Join date", "Leave date", "Active", "Note"},
			Rows:   workerRows,
		},
		xlsx.Sheet{
			Name:   "Staff",
			Header: []string{"Name", "Position", "Salary", "Join date", "Leave date"},
			Rows:   staffRows,
		},
	)
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("People_%s_to_%s.xlsx", utils.FormatDate(start), utils.FormatDate(end))
	return &File{Name: name, Content: content}, nil
}

// ExportTimesheetsDay renders the flat hours listing for a single day.
func (s *Service) ExportTimesheetsDay(ctx context.Context, date time.Time) (*File, error) {
	entries, err := s.timesheetService.GetDay(ctx, date)
	if err != nil {
		zap.L().Error("can't export timesheets: ", zap.Error(err))
		return nil, err
	}
	content, err := buildTimesheetSheet(entries)
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("Working_Hours_%s.xlsx", utils.FormatDate(date))
	return &File{Name: name, Content: content}, nil
}

// ExportTimesheetsRange renders the flat hours listing over a range.
func (s *Service) ExportTimesheetsRange(ctx context.Context, start, end time.Time) (*File, error) {
	entries, err := s.timesheetService.GetRange(ctx, start, end)
	if err != nil {
		zap.L().Error("can't export timesheets: ", zap.Error(err))
		return nil, err
	}
	content, err := buildTimesheetSheet(entries)
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("Working_Hours_%s_to_%s.xlsx", utils.FormatDate(start), utils.FormatDate(end))
	return &File{Name: name, Content: content}, nil
}

func buildTimesheetSheet(entries []domain.TimesheetEntry) ([]byte, error) {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{utils.FormatDate(e.Date), e.WorkerName, e.Hours, e.Status, e.Note})
	}
	return xlsx.Build(xlsx.Sheet{
		Name:   "Working Hours",
		Header: []string{"Date", "Worker", "Hours", "Status", "Remark"},
		Rows:   rows,
	})
}

// ExportMatrix renders one row per worker with a column for every day in
// the range, a range total, and an empty remark column.
func (s *Service) ExportMatrix(ctx context.Context, start, end time.Time) (*File, error) {
	matrix, err := s.timesheetService.GetRangeMatrix(ctx, start, end)
	if err != nil {
		zap.L().Error("can't export matrix: ", zap.Error(err))
		return nil, err
	}

	header := make([]string, 0, len(matrix.Dates)+3)
	header = append(header, "Worker")
	header = append(header, matrix.Dates...)
	header = append(header, "Total", "Remark")

	rows := make([][]any, 0, len(matrix.Workers))
	for _, w := range matrix.Workers {
		row := make([]any, 0, len(header))
		row = append(row, w)
		for _, d := range matrix.Dates {
			row = append(row, matrix.Data[w][d])
		}
		row = append(row, matrix.Totals[w], "")
		rows = append(rows, row)
	}

	content, err := xlsx.Build(xlsx.Sheet{
		Name:   "Working Hours",
		Header: header,
		Rows:   rows,
	})
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("Working_Hours_Matrix_%s_to_%s.xlsx", utils.FormatDate(start), utils.FormatDate(end))
	return &File{Name: name, Content: content}, nil
}

func (s *Service) ExportSummary(ctx context.Context, start, end time.Time) (*File, error) {
	summary, err := s.cashService.GetRangeSummary(ctx, start, end)
	if err != nil {
		zap.L().Error("can't export summary: ", zap.Error(err))
		return nil, err
	}

	content, err := xlsx.Build(xlsx.Sheet{
		Name: "Summary",
		Rows: [][]any{
			{"From", utils.FormatDate(start)},
			{"To", utils.FormatDate(end)},
			{},
			{"Total Expenses", summary.Expenses},
			{"Total Revenue", summary.Revenue},
		},
	})
	if err != nil {
		zap.L().Error("can't render workbook: ", zap.Error(err))
		return nil, err
	}
	name := fmt.Sprintf("Monthly_Summary_%s_to_%s.xlsx", utils.FormatDate(start), utils.FormatDate(end))
	return &File{Name: name, Content: content}, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return utils.FormatDate(*t)
}
