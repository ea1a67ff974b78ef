package cash

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/dto"
	"github.com/talmaprime/teaops/internal/service/cashservice"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
	"github.com/talmaprime/teaops/pkg/utils"
)

// maxVoucherSize bounds a single voucher upload.
const maxVoucherSize = 16 << 20

type Service interface {
	CreateEntry(ctx context.Context, userID int, in cashservice.EntryInput) (*domain.CashEntry, error)
	GetMonth(ctx context.Context, year int, month time.Month) ([]domain.CashEntry, *domain.CashTotals, error)
	Approve(ctx context.Context, id, approverID int) error
	Reset(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	OpenVoucher(name string) ([]byte, error)
}

type CashHandler struct {
	cashService Service
}

func New(cashService Service) *CashHandler {
	return &CashHandler{
		cashService: cashService,
	}
}

// Create godoc
//
//	@Summary		Add a cash book entry
//	@Description	Record one day's figures as a multipart form with an optional voucher file. Blank or unparsable amounts count as zero and the totals are derived server-side.
//	@Tags			Cash
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			date	formData	string	false	"Entry date, defaults to today"
//	@Param			total_kg	formData	number	false	"Green leaf weight"
//	@Param			amount_tk	formData	number	false	"Leaf amount"
//	@Param			voucher	formData	file	false	"Voucher scan"
//	@Success		200	{object}	dto.CreateCashEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid form"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash [post]
func (h *CashHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxVoucherSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	date := time.Now()
	if arg := r.FormValue("date"); arg != "" {
		parsed, err := utils.ParseDate(arg)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	in := cashservice.EntryInput{
		Date:           date,
		TotalKg:        utils.ParseAmount(r.FormValue("total_kg")),
		AmountTk:       utils.ParseAmount(r.FormValue("amount_tk")),
		GreenLeafBill:  utils.ParseAmount(r.FormValue("green_leaf_bill_payment")),
		StaffSalary:    utils.ParseAmount(r.FormValue("staff_salary")),
		LabourBill:     utils.ParseAmount(r.FormValue("labour_bill")),
		ProductionCost: utils.ParseAmount(r.FormValue("production_cost")),
		Coal:           utils.ParseAmount(r.FormValue("coal")),
		Diesel:         utils.ParseAmount(r.FormValue("diesel")),
		Electricity:    utils.ParseAmount(r.FormValue("electricity")),
		OtherExp:       utils.ParseAmount(r.FormValue("other_exp")),
		CapitalCost:    utils.ParseAmount(r.FormValue("capital_cost")),
		Machineries:    utils.ParseAmount(r.FormValue("machineries")),
		AssetsPurchase: utils.ParseAmount(r.FormValue("assets_purchase")),
		Construction:   utils.ParseAmount(r.FormValue("construction")),
		CashReceive:    utils.ParseAmount(r.FormValue("cash_receive")),
		AddAmount:      utils.ParseAmount(r.FormValue("add_amount")),
		LessAmount:     utils.ParseAmount(r.FormValue("less_amount")),
		Note:           strings.TrimSpace(r.FormValue("note")),
	}

	file, header, err := r.FormFile("voucher")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxVoucherSize))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid voucher upload")
			return
		}
		in.VoucherName = header.Filename
		in.VoucherData = data
	case errors.Is(err, http.ErrMissingFile):
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid voucher upload")
		return
	}

	created, err := h.cashService.CreateEntry(r.Context(), userID, in)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateCashEntryResponseDTO{
		Message: "Saved (awaiting MD/Admin approval).",
		ID:      created.ID,
	})
}

// GetMonth godoc
//
//	@Summary		Get the cash book for a month
//	@Description	List the month's entries in date order together with a per-column totals row
//	@Tags			Cash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month as YYYY-MM, defaults to the current month"
//	@Success		200		{object}	dto.CashMonthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid month"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cash [get]
func (h *CashHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month := time.Now().Year(), time.Now().Month()
	if arg := r.URL.Query().Get("month"); arg != "" {
		var err error
		year, month, err = utils.ParseMonth(arg)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	entries, totals, err := h.cashService.GetMonth(r.Context(), year, month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CashMonthResponseDTO{
		Month:   time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(utils.MonthLayout),
		Entries: make([]dto.CashEntryResponseDTO, len(entries)),
		Totals:  toTotalsDTO(totals),
	}
	for i, e := range entries {
		response.Entries[i] = toEntryDTO(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a cash book entry
//	@Description	Mark an entry approved and record who approved it and when
//	@Tags			Cash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Entry ID"
//	@Success		200	{object}	utils.Response	"Daily entry approved"
//	@Failure		400	{object}	utils.Response	"Invalid entry id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/{id}/approve [post]
func (h *CashHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := h.cashService.Approve(r.Context(), id, userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Daily entry approved."})
}

// Reset godoc
//
//	@Summary		Reset a cash book entry
//	@Description	Return an approved entry to submitted and clear the approval marks
//	@Tags			Cash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Entry ID"
//	@Success		200	{object}	utils.Response	"Daily entry reset to submitted"
//	@Failure		400	{object}	utils.Response	"Invalid entry id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/{id}/reset [post]
func (h *CashHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := h.cashService.Reset(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Daily entry reset to submitted."})
}

// Delete godoc
//
//	@Summary		Delete a cash book entry
//	@Description	Remove an entry from the cash book. Rejecting an entry is the same operation.
//	@Tags			Cash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Entry ID"
//	@Success		200	{object}	utils.Response	"Daily entry deleted"
//	@Failure		400	{object}	utils.Response	"Invalid entry id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/{id} [delete]
func (h *CashHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := h.cashService.Delete(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Daily entry deleted."})
}

// DownloadVoucher godoc
//
//	@Summary		Download a voucher file
//	@Description	Stream a previously uploaded voucher by its stored name
//	@Tags			Cash
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			name	path		string	true	"Stored voucher name"
//	@Success		200		{file}		binary
//	@Failure		404		{object}	utils.Response	"Voucher not found"
//	@Router			/api/cash/vouchers/{name} [get]
func (h *CashHandler) DownloadVoucher(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	data, err := h.cashService.OpenVoucher(name)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Voucher not found")
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		zap.L().Error("can't write voucher: ", zap.Error(err))
	}
}

func toEntryDTO(e domain.CashEntry) dto.CashEntryResponseDTO {
	out := dto.CashEntryResponseDTO{
		ID:             e.ID,
		Date:           utils.FormatDate(e.Date),
		TotalKg:        e.TotalKg,
		AmountTk:       e.AmountTk,
		GreenLeafBill:  e.GreenLeafBill,
		StaffSalary:    e.StaffSalary,
		LabourBill:     e.LabourBill,
		ProductionCost: e.ProductionCost,
		Coal:           e.Coal,
		Diesel:         e.Diesel,
		Electricity:    e.Electricity,
		OtherExp:       e.OtherExp,
		TotalCost:      e.TotalCost,
		CapitalCost:    e.CapitalCost,
		Machineries:    e.Machineries,
		AssetsPurchase: e.AssetsPurchase,
		Construction:   e.Construction,
		FixedCost:      e.FixedCost,
		GrandTotal:     e.GrandTotal,
		CashReceive:    e.CashReceive,
		AddAmount:      e.AddAmount,
		LessAmount:     e.LessAmount,
		NetCash:        e.NetCash,
		Note:           e.Note,
		Status:         e.Status,
		ApprovedBy:     e.ApprovedBy,
	}
	if e.VoucherPath != nil {
		out.Voucher = *e.VoucherPath
	}
	if e.ApprovedAt != nil {
		out.ApprovedAt = e.ApprovedAt.Format(time.RFC3339)
	}
	return out
}

func toTotalsDTO(t *domain.CashTotals) dto.CashTotalsDTO {
	if t == nil {
		return dto.CashTotalsDTO{}
	}
	return dto.CashTotalsDTO{
		TotalKg:        t.TotalKg,
		AmountTk:       t.AmountTk,
		GreenLeafBill:  t.GreenLeafBill,
		StaffSalary:    t.StaffSalary,
		LabourBill:     t.LabourBill,
		ProductionCost: t.ProductionCost,
		Coal:           t.Coal,
		Diesel:         t.Diesel,
		Electricity:    t.Electricity,
		OtherExp:       t.OtherExp,
		TotalCost:      t.TotalCost,
		CapitalCost:    t.CapitalCost,
		Machineries:    t.Machineries,
		AssetsPurchase: t.AssetsPurchase,
		Construction:   t.Construction,
		FixedCost:      t.FixedCost,
		GrandTotal:     t.GrandTotal,
		CashReceive:    t.CashReceive,
		AddAmount:      t.AddAmount,
		LessAmount:     t.LessAmount,
		NetCash:        t.NetCash,
	}
}
