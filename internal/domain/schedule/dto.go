package schedule

import (
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	DayOfWeek      int     `json:"day_of_week"`
	StartTime      string  `json:"start_time"` // "08:00"
	EndTime        string  `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDayOfWeek(r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	start, okStart := validator.IsValidTimeOfDay(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a time like 08:00",
		})
	}
	end, okEnd := validator.IsValidTimeOfDay(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a time like 17:00",
		})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	// Break is optional but must come as a pair inside the shift
	if (r.BreakStartTime == nil) != (r.BreakEndTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start_time",
			Message: "break_start_time and break_end_time must be provided together",
		})
	} else if r.BreakStartTime != nil {
		bs, okBS := validator.IsValidTimeOfDay(*r.BreakStartTime)
		be, okBE := validator.IsValidTimeOfDay(*r.BreakEndTime)
		if !okBS || !okBE {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start_time",
				Message: "break times must be times like 12:00",
			})
		} else if !be.After(bs) {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end_time",
				Message: "break_end_time must be after break_start_time",
			})
		} else if okStart && okEnd && (bs.Before(start) || be.After(end)) {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start_time",
				Message: "break must fall inside the shift window",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID             string  `json:"id"`
	StaffID        string  `json:"staff_id"`
	DayOfWeek      int     `json:"day_of_week"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
}
