package reports

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/dto"
	"github.com/talmaprime/teaops/internal/service/reportservice"
	"github.com/talmaprime/teaops/pkg/utils"
	"github.com/talmaprime/teaops/pkg/xlsx"
)

type Service interface {
	Summary(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error)
	ExportDaily(ctx context.Context, start, end time.Time) (*reportservice.File, error)
	ExportPeople(ctx context.Context, start, end time.Time) (*reportservice.File, error)
	ExportTimesheetsDay(ctx context.Context, date time.Time) (*reportservice.File, error)
	ExportTimesheetsRange(ctx context.Context, start, end time.Time) (*reportservice.File, error)
	ExportMatrix(ctx context.Context, start, end time.Time) (*reportservice.File, error)
	ExportSummary(ctx context.Context, start, end time.Time) (*reportservice.File, error)
}

type ReportsHandler struct {
	reportService Service
}

func New(reportService Service) *ReportsHandler {
	return &ReportsHandler{
		reportService: reportService,
	}
}

// dateRange reads the requested period: an explicit start and end pair
// wins, then an explicit month, then the current month.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	startArg := r.URL.Query().Get("start")
	endArg := r.URL.Query().Get("end")
	if startArg != "" && endArg != "" {
		start, err := utils.ParseDate(startArg)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := utils.ParseDate(endArg)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}
	if arg := r.URL.Query().Get("month"); arg != "" {
		year, month, err := utils.ParseMonth(arg)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start, end := utils.MonthRange(year, month)
		return start, end, nil
	}
	now := time.Now()
	start, end := utils.MonthRange(now.Year(), now.Month())
	return start, end, nil
}

func sendWorkbook(w http.ResponseWriter, file *reportservice.File) {
	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		zap.L().Error("can't write workbook: ", zap.Error(err))
	}
}

// GetSummary godoc
//
//	@Summary		Get expense and revenue totals
//	@Description	Roll the cash book up over the requested period. Expenses are total cost plus fixed cost, revenue is net cash.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start	query		string	false	"Range start as YYYY-MM-DD"
//	@Param			end		query		string	false	"Range end as YYYY-MM-DD"
//	@Param			month	query		string	false	"Month as YYYY-MM, used when start and end are absent"
//	@Success		200		{object}	dto.SummaryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/summary [get]
func (h *ReportsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	summary, err := h.reportService.Summary(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		Start:         utils.FormatDate(start),
		End:           utils.FormatDate(end),
		TotalExpenses: summary.Expenses,
		TotalRevenue:  summary.Revenue,
	})
}

// ExportDaily godoc
//
//	@Summary		Export the cash book
//	@Description	Download the period's cash entries as an xlsx workbook
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			start	query	string	false	"Range start as YYYY-MM-DD"
//	@Param			end		query	string	false	"Range end as YYYY-MM-DD"
//	@Param			month	query	string	false	"Month as YYYY-MM, used when start and end are absent"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/exports/daily [get]
func (h *ReportsHandler) ExportDaily(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	file, err := h.reportService.ExportDaily(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendWorkbook(w, file)
}

// ExportPeople godoc
//
//	@Summary		Export workers and staff
//	@Description	Download the full roster as an xlsx workbook with a Workers and a Staff sheet
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			start	query	string	false	"Range start as YYYY-MM-DD, used only for the file name"
//	@Param			end		query	string	false	"Range end as YYYY-MM-DD, used only for the file name"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/exports/people [get]
func (h *ReportsHandler) ExportPeople(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	file, err := h.reportService.ExportPeople(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendWorkbook(w, file)
}

// ExportTimesheets godoc
//
//	@Summary		Export working hours
//	@Description	Download timesheet rows as an xlsx workbook, either for a single day or for a period
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			date	query	string	false	"Single day as YYYY-MM-DD; takes precedence over the range"
//	@Param			start	query	string	false	"Range start as YYYY-MM-DD"
//	@Param			end		query	string	false	"Range end as YYYY-MM-DD"
//	@Param			month	query	string	false	"Month as YYYY-MM, used when start and end are absent"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/exports/timesheets [get]
func (h *ReportsHandler) ExportTimesheets(w http.ResponseWriter, r *http.Request) {
	if arg := r.URL.Query().Get("date"); arg != "" {
		date, err := utils.ParseDate(arg)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		file, err := h.reportService.ExportTimesheetsDay(r.Context(), date)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		sendWorkbook(w, file)
		return
	}

	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	file, err := h.reportService.ExportTimesheetsRange(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendWorkbook(w, file)
}

// ExportMatrix godoc
//
//	@Summary		Export the working-hours matrix
//	@Description	Download a worker-by-day hours matrix for the period as an xlsx workbook
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			start	query	string	false	"Range start as YYYY-MM-DD"
//	@Param			end		query	string	false	"Range end as YYYY-MM-DD"
//	@Param			month	query	string	false	"Month as YYYY-MM, used when start and end are absent"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/exports/timesheets_matrix [get]
func (h *ReportsHandler) ExportMatrix(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	file, err := h.reportService.ExportMatrix(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendWorkbook(w, file)
}

// ExportSummary godoc
//
//	@Summary		Export the period summary
//	@Description	Download the expense and revenue totals for the period as an xlsx workbook
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			start	query	string	false	"Range start as YYYY-MM-DD"
//	@Param			end		query	string	false	"Range end as YYYY-MM-DD"
//	@Param			month	query	string	false	"Month as YYYY-MM, used when start and end are absent"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/exports/summary [get]
func (h *ReportsHandler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	file, err := h.reportService.ExportSummary(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendWorkbook(w, file)
}
