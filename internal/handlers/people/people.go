package people

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/dto"
	"github.com/talmaprime/teaops/pkg/utils"
)

// weeklyHours is the assumed working week used for the wage preview column.
const weeklyHours = 40

type Service interface {
	AddWorker(ctx context.Context, name string, joinDate time.Time, hourlyRate float64, note string) (*domain.Worker, error)
	AddStaff(ctx context.Context, name, position string, salary float64, joinDate time.Time) (*domain.Staff, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	UpdateWorkerRate(ctx context.Context, id int, rate float64) error
	ApproveWorkerRate(ctx context.Context, id int) error
	UpdateStaffSalary(ctx context.Context, id int, salary float64) error
	ApproveStaffSalary(ctx context.Context, id int) error
	MarkWorkerLeft(ctx context.Context, id int) error
	DeleteWorker(ctx context.Context, id int) error
	DeleteStaff(ctx context.Context, id int) error
}

type PeopleHandler struct {
	peopleService Service
}

func New(peopleService Service) *PeopleHandler {
	return &PeopleHandler{
		peopleService: peopleService,
	}
}

// List godoc
//
//	@Summary		Get workers and staff
//	@Description	List all workers and staff with a weekly wage preview per worker and the total staff salary
//	@Tags			People
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PeopleResponseDTO
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/people [get]
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.peopleService.ListWorkers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	staff, err := h.peopleService.ListStaff(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.PeopleResponseDTO{
		Workers: make([]dto.WorkerResponseDTO, len(workers)),
		Staff:   make([]dto.StaffResponseDTO, len(staff)),
	}
	for i, wk := range workers {
		response.Workers[i] = dto.WorkerResponseDTO{
			ID:                 wk.ID,
			Name:               wk.Name,
			JoinDate:           utils.FormatDate(wk.JoinDate),
			Note:               wk.Note,
			Active:             wk.Active,
			HourlyRate:         wk.HourlyRate,
			ApprovedHourlyRate: wk.ApprovedHourlyRate,
			WeeklyWages:        wk.HourlyRate * weeklyHours,
		}
		if wk.LeaveDate != nil {
			response.Workers[i].LeaveDate = utils.FormatDate(*wk.LeaveDate)
		}
	}
	for i, st := range staff {
		response.Staff[i] = dto.StaffResponseDTO{
			ID:             st.ID,
			Name:           st.Name,
			Position:       st.Position,
			Salary:         st.Salary,
			ApprovedSalary: st.ApprovedSalary,
			JoinDate:       utils.FormatDate(st.JoinDate),
		}
		if st.LeaveDate != nil {
			response.Staff[i].LeaveDate = utils.FormatDate(*st.LeaveDate)
		}
		response.TotalStaffSalary += st.Salary
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Add godoc
//
//	@Summary		Add a worker or staff member
//	@Description	Create a person of the given kind. Workers start active with their entered rate pending approval; staff salaries start unapproved.
//	@Tags			People
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddPersonRequestDTO	true	"Add person request body"
//	@Success		200		{object}	utils.Response	"Worker added"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/people [post]
func (h *PeopleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPersonRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	var joinDate time.Time
	if req.JoinDate != "" {
		parsed, err := utils.ParseDate(req.JoinDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid join date")
			return
		}
		joinDate = parsed
	}

	switch req.Kind {
	case "worker":
		if _, err := h.peopleService.AddWorker(r.Context(), req.Name, joinDate, req.HourlyRate, req.Note); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Worker added."})
	case "staff":
		if _, err := h.peopleService.AddStaff(r.Context(), req.Name, req.Position, req.Salary, joinDate); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Staff added."})
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid kind")
	}
}

// UpdateRate godoc
//
//	@Summary		Update a worker's hourly rate
//	@Description	Set a new hourly rate. The change stays pending until approved, so the approved rate drops to zero.
//	@Tags			People
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Worker ID"
//	@Param			request	body		dto.UpdateRateRequestDTO	true	"New hourly rate"
//	@Success		200		{object}	utils.Response	"Hourly rate updated"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/people/workers/{id}/rate [post]
func (h *PeopleHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid worker id")
		return
	}
	var req dto.UpdateRateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.peopleService.UpdateWorkerRate(r.Context(), id, req.HourlyRate); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Hourly rate updated (pending approval)."})
}

// ApproveRate godoc
//
//	@Summary		Approve a worker's hourly rate
//	@Description	Copy the pending hourly rate into the approved rate
//	@Tags			People
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Worker ID"
//	@Success		200	{object}	utils.Response	"Hourly rate approved"
//	@Failure		400	{object}	utils.Response	"Invalid worker id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/people/workers/{id}/rate/approve [post]
func (h *PeopleHandler) ApproveRate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid worker id")
		return
	}
	if err := h.peopleService.ApproveWorkerRate(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Hourly rate approved."})
}

// UpdateSalary godoc
//
//	@Summary		Update a staff salary
//	@Description	Set a new salary. The change stays pending until approved, so the approved salary is cleared.
//	@Tags			People
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Staff ID"
//	@Param			request	body		dto.UpdateSalaryRequestDTO	true	"New salary"
//	@Success		200		{object}	utils.Response	"Salary updated"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/people/staff/{id}/salary [post]
func (h *PeopleHandler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid staff id")
		return
	}
	var req dto.UpdateSalaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.peopleService.UpdateStaffSalary(r.Context(), id, req.Salary); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Salary updated (pending approval)."})
}

// ApproveSalary godoc
//
//	@Summary		Approve a staff salary
//	@Description	Copy the pending salary into the approved salary
//	@Tags			People
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Staff ID"
//	@Success		200	{object}	utils.Response	"Salary approved"
//	@Failure		400	{object}	utils.Response	"Invalid staff id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/people/staff/{id}/salary/approve [post]
func (h *PeopleHandler) ApproveSalary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid staff id")
		return
	}
	if err := h.peopleService.ApproveStaffSalary(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Salary approved."})
}

// MarkLeft godoc
//
//	@Summary		Mark a worker as left
//	@Description	Deactivate a worker and record today as the leave date
//	@Tags			People
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Worker ID"
//	@Success		200	{object}	utils.Response	"Worker marked as left"
//	@Failure		400	{object}	utils.Response	"Invalid worker id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/people/workers/{id}/leave [post]
func (h *PeopleHandler) MarkLeft(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid worker id")
		return
	}
	if err := h.peopleService.MarkWorkerLeft(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Worker marked as left."})
}

// Delete godoc
//
//	@Summary		Delete a worker or staff member
//	@Description	Remove a person of the given kind entirely
//	@Tags			People
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	path		string	true	"Person kind"	Enums(worker, staff)
//	@Param			id		path		int		true	"Person ID"
//	@Success		200		{object}	utils.Response	"Deleted"
//	@Failure		400		{object}	utils.Response	"Invalid kind"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/people/{kind}/{id} [delete]
func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid person id")
		return
	}
	switch chi.URLParam(r, "kind") {
	case "worker":
		err = h.peopleService.DeleteWorker(r.Context(), id)
	case "staff":
		err = h.peopleService.DeleteStaff(r.Context(), id)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid kind")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deleted."})
}
