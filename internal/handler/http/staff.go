package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/response"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

// List implements StaffHandler.
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *staff.Status
	if s := r.URL.Query().Get("status"); s != "" {
		if !validator.IsInSlice(s, []string{string(staff.StatusActive), string(staff.StatusInactive)}) {
			response.BadRequest(w, "status must be active or inactive", nil)
			return
		}
		value := staff.Status(s)
		status = &value
	}

	result, err := h.staffService.ListStaff(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements StaffHandler.
func (h *staffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.staffService.GetStaff(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
