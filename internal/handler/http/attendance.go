package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/middleware"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/response"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Check implements AttendanceHandler.
func (h *attendanceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Check(r.Context(), staffID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), staffID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Stats(r.Context(), staffID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reconcile implements AttendanceHandler. Admin only; marks a past date's
// unstarted rows absent and creates absent rows for staff with no row.
func (h *attendanceHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ReconcileAbsent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absent reconciliation completed", result)
}

// periodFromQuery parses the month and year query parameters.
func periodFromQuery(r *http.Request) (int, int, error) {
	var errs validator.ValidationErrors

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required and must be a number",
		})
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required and must be a number",
		})
	}

	if len(errs) > 0 {
		return 0, 0, errs
	}
	return month, year, nil
}
