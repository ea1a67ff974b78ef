package timesheets

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/dto"
	"github.com/talmaprime/teaops/internal/service/timesheetservice"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
	"github.com/talmaprime/teaops/pkg/utils"
)

type Service interface {
	SaveDay(ctx context.Context, userID int, date time.Time, entries []timesheetservice.DayEntry) (int, error)
	GetDay(ctx context.Context, date time.Time) ([]domain.TimesheetEntry, error)
	ListActiveWorkers(ctx context.Context) ([]domain.Worker, error)
	GetMonthlyGrid(ctx context.Context, year int, month time.Month) (*timesheetservice.WeeklyGrid, error)
	Approve(ctx context.Context, id, approverID int) error
	Reset(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type TimesheetsHandler struct {
	timesheetService Service
}

func New(timesheetService Service) *TimesheetsHandler {
	return &TimesheetsHandler{
		timesheetService: timesheetService,
	}
}

// GetDay godoc
//
//	@Summary		Get one day of working hours
//	@Description	Return the active worker roster for the entry form together with the rows recorded for the chosen day
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Day as YYYY-MM-DD, defaults to today"
//	@Success		200		{object}	dto.TimesheetDayResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets [get]
func (h *TimesheetsHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if arg := r.URL.Query().Get("date"); arg != "" {
		parsed, err := utils.ParseDate(arg)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	workers, err := h.timesheetService.ListActiveWorkers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	rows, err := h.timesheetService.GetDay(r.Context(), date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.TimesheetDayResponseDTO{
		Date:    utils.FormatDate(date),
		Workers: make([]dto.RosterWorkerDTO, len(workers)),
		Rows:    make([]dto.TimesheetRowResponseDTO, len(rows)),
	}
	for i, wk := range workers {
		response.Workers[i] = dto.RosterWorkerDTO{ID: wk.ID, Name: wk.Name}
	}
	for i, row := range rows {
		response.Rows[i] = toRowDTO(row)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SaveDay godoc
//
//	@Summary		Save one day of working hours
//	@Description	Record hours for the given day. Rows for inactive workers or with zero hours are skipped; the saved count is returned.
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveTimesheetRequestDTO	true	"Day entries"
//	@Success		200		{object}	dto.SaveTimesheetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets [post]
func (h *TimesheetsHandler) SaveDay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.SaveTimesheetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	entries := make([]timesheetservice.DayEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = timesheetservice.DayEntry{
			WorkerID: e.WorkerID,
			Hours:    e.Hours,
			Note:     e.Note,
		}
	}

	saved, err := h.timesheetService.SaveDay(r.Context(), userID, date, entries)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SaveTimesheetResponseDTO{
		Message: "Saved timesheets (pending approval).",
		Saved:   saved,
	})
}

// GetGrid godoc
//
//	@Summary		Get the monthly weekly-hours grid
//	@Description	Aggregate a month's hours per worker into Saturday-ending weeks, with per-worker totals and the latest remark
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month as YYYY-MM, defaults to the current month"
//	@Success		200		{object}	timesheetservice.WeeklyGrid
//	@Failure		400		{object}	utils.Response	"Invalid month"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets/grid [get]
func (h *TimesheetsHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	year, month := time.Now().Year(), time.Now().Month()
	if arg := r.URL.Query().Get("month"); arg != "" {
		var err error
		year, month, err = utils.ParseMonth(arg)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	grid, err := h.timesheetService.GetMonthlyGrid(r.Context(), year, month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, grid)
}

// Approve godoc
//
//	@Summary		Approve a timesheet row
//	@Description	Mark a row approved and record who approved it and when
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Timesheet ID"
//	@Success		200	{object}	utils.Response	"Timesheet approved"
//	@Failure		400	{object}	utils.Response	"Invalid timesheet id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets/{id}/approve [post]
func (h *TimesheetsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid timesheet id")
		return
	}
	if err := h.timesheetService.Approve(r.Context(), id, userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Timesheet approved."})
}

// Reset godoc
//
//	@Summary		Reset a timesheet row
//	@Description	Return a row to pending and clear the approval marks
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Timesheet ID"
//	@Success		200	{object}	utils.Response	"Timesheet reset to pending"
//	@Failure		400	{object}	utils.Response	"Invalid timesheet id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets/{id}/reset [post]
func (h *TimesheetsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid timesheet id")
		return
	}
	if err := h.timesheetService.Reset(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Timesheet reset to pending."})
}

// Delete godoc
//
//	@Summary		Delete a timesheet row
//	@Description	Remove a row entirely. Rejecting a row is the same operation.
//	@Tags			Timesheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Timesheet ID"
//	@Success		200	{object}	utils.Response	"Timesheet deleted"
//	@Failure		400	{object}	utils.Response	"Invalid timesheet id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/timesheets/{id} [delete]
func (h *TimesheetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid timesheet id")
		return
	}
	if err := h.timesheetService.Delete(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Timesheet deleted."})
}

func toRowDTO(e domain.TimesheetEntry) dto.TimesheetRowResponseDTO {
	out := dto.TimesheetRowResponseDTO{
		ID:         e.ID,
		Date:       utils.FormatDate(e.Date),
		WorkerID:   e.WorkerID,
		WorkerName: e.WorkerName,
		Hours:      e.Hours,
		Note:       e.Note,
		Status:     e.Status,
		ApprovedBy: e.ApprovedBy,
	}
	if e.ApprovedAt != nil {
		out.ApprovedAt = e.ApprovedAt.Format(time.RFC3339)
	}
	return out
}
