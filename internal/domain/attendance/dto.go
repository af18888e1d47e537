package attendance

import (
	"encoding/base64"

	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

// maxPhotoBytes bounds the decoded photo payload (5MB).
const maxPhotoBytes = 5 << 20

type CheckRequest struct {
	CheckType   int     `json:"check_type"`
	DeviceTime  *string `json:"device_time,omitempty"` // RFC3339; server time when absent
	PhotoBase64 *string `json:"photo_base64,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckType < CheckTypeArrival || r.CheckType > CheckTypeDeparture {
		errs = append(errs, validator.ValidationError{
			Field:   "check_type",
			Message: "check_type must be 1 (arrival), 2 (break start), 3 (break resume) or 4 (departure)",
		})
	}

	if r.DeviceTime != nil && *r.DeviceTime != "" {
		if _, ok := validator.IsValidDateTime(*r.DeviceTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "device_time",
				Message: "device_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.PhotoBase64 != nil && *r.PhotoBase64 != "" {
		if base64.StdEncoding.DecodedLen(len(*r.PhotoBase64)) > maxPhotoBytes {
			errs = append(errs, validator.ValidationError{
				Field:   "photo_base64",
				Message: "photo must not exceed 5MB",
			})
		}
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReconcileRequest struct {
	Date string `json:"date"` // "YYYY-MM-DD"
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the per-day snapshot returned by today/check and
// listed by history.
type AttendanceResponse struct {
	ID       string `json:"id"`
	StaffID  string `json:"staff_id"`
	WorkDate string `json:"work_date"`

	ScheduledStart      string  `json:"scheduled_start"`
	ScheduledEnd        string  `json:"scheduled_end"`
	ScheduledBreakStart *string `json:"scheduled_break_start,omitempty"`
	ScheduledBreakEnd   *string `json:"scheduled_break_end,omitempty"`

	CheckIn1Time *string `json:"check_in_1_time,omitempty"`
	CheckIn2Time *string `json:"check_in_2_time,omitempty"`
	CheckIn3Time *string `json:"check_in_3_time,omitempty"`
	CheckIn4Time *string `json:"check_in_4_time,omitempty"`

	CheckIn1PhotoURL *string `json:"check_in_1_photo_url,omitempty"`
	CheckIn2PhotoURL *string `json:"check_in_2_photo_url,omitempty"`
	CheckIn3PhotoURL *string `json:"check_in_3_photo_url,omitempty"`
	CheckIn4PhotoURL *string `json:"check_in_4_photo_url,omitempty"`

	CheckCount    int `json:"check_count"`
	NextCheckType int `json:"next_check_type"` // 0 when complete

	LateMinutes       int `json:"late_minutes"`
	OverBreakMinutes  int `json:"over_break_minutes"`
	EarlyLeaveMinutes int `json:"early_leave_minutes"`
	OvertimeMinutes   int `json:"overtime_minutes"`
	TotalWorkMinutes  int `json:"total_work_minutes"`

	LatePenalty       decimal.Decimal `json:"late_penalty"`
	OverBreakPenalty  decimal.Decimal `json:"over_break_penalty"`
	EarlyLeavePenalty decimal.Decimal `json:"early_leave_penalty"`
	TotalPenalty      decimal.Decimal `json:"total_penalty"`

	Note   *string `json:"note,omitempty"`
	Status string  `json:"status"`
}

// CheckResponse pairs the updated snapshot with a human-readable status
// line for the mobile client.
type CheckResponse struct {
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`
}

type HistoryResponse struct {
	Month int                  `json:"month"`
	Year  int                  `json:"year"`
	Days  []AttendanceResponse `json:"days"`
}

// StatsResponse aggregates one staff member's month.
type StatsResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	CompleteDays   int `json:"complete_days"`
	IncompleteDays int `json:"incomplete_days"`
	AbsentDays     int `json:"absent_days"`

	TotalLateMinutes     int `json:"total_late_minutes"`
	TotalOvertimeMinutes int `json:"total_overtime_minutes"`

	TotalPenalty decimal.Decimal `json:"total_penalty"`
}

type ReconcileResponse struct {
	Date          string `json:"date"`
	MarkedAbsent  int64  `json:"marked_absent"`
	CreatedAbsent int    `json:"created_absent"`
}
