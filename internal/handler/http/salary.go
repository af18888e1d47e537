package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/middleware"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/response"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type SalaryHandler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	ListPeriod(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	payrollService payroll.PayrollService
	loc            *time.Location
}

func NewSalaryHandler(payrollService payroll.PayrollService, loc *time.Location) SalaryHandler {
	return &salaryHandlerImpl{
		payrollService: payrollService,
		loc:            loc,
	}
}

// GetCurrent implements SalaryHandler. The current calendar month in the
// salon timezone.
func (h *salaryHandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now().In(h.loc)
	result, err := h.payrollService.GetSlip(r.Context(), staffID, int(now.Month()), now.Year())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPeriod implements SalaryHandler.
func (h *salaryHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, err := periodFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSlip(r.Context(), staffID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements SalaryHandler.
func (h *salaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}

	result, err := h.payrollService.History(r.Context(), staffID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements SalaryHandler. Admin only; persists a draft slip.
func (h *salaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	month, year, err := periodFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GenerateSlip(r.Context(), staffID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated", result)
}

// Confirm implements SalaryHandler.
func (h *salaryHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ConfirmSlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip confirmed", result)
}

// Pay implements SalaryHandler.
func (h *salaryHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip marked as paid", result)
}

// ListPeriod implements SalaryHandler. Admin only.
func (h *salaryHandlerImpl) ListPeriod(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// periodFromURL parses the {month} and {year} path segments.
func periodFromURL(r *http.Request) (int, int, error) {
	var errs validator.ValidationErrors

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a number",
		})
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a number",
		})
	}

	if len(errs) > 0 {
		return 0, 0, errs
	}
	return month, year, nil
}
