package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/middleware"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMySchedules(w http.ResponseWriter, r *http.Request)
	GetStaffSchedules(w http.ResponseWriter, r *http.Request)
	UpsertStaffSchedules(w http.ResponseWriter, r *http.Request)
	DeleteStaffSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetMySchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMySchedules(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.StaffIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GetWeek(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStaffSchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetStaffSchedules(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")

	result, err := h.scheduleService.GetWeek(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertStaffSchedules implements ScheduleHandler. Replaces or creates
// the weekday rows carried in the request body.
func (h *scheduleHandlerImpl) UpsertStaffSchedules(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")

	var rows []schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.UpsertWeek(r.Context(), staffID, rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedules updated successfully", result)
}

// DeleteStaffSchedule implements ScheduleHandler. Removes one weekday
// row; days without a row fall back to the default shift.
func (h *scheduleHandlerImpl) DeleteStaffSchedule(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")

	dayOfWeek, err := strconv.Atoi(chi.URLParam(r, "dayOfWeek"))
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		response.BadRequest(w, "Day of week must be between 0 and 6", nil)
		return
	}

	if err := h.scheduleService.DeleteDay(r.Context(), staffID, dayOfWeek); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule removed successfully", nil)
}
