package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Check types, in the order they must arrive.
const (
	CheckTypeArrival     = 1
	CheckTypeBreakStart  = 2
	CheckTypeBreakResume = 3
	CheckTypeDeparture   = 4
)

// Attendance is one staff member's record for one work date. At most one
// row exists per (staff_id, work_date). The scheduled window is a
// snapshot taken when the row is created; later schedule edits do not
// affect it. Version guards the check_count read-modify-write.
type Attendance struct {
	ID      string
	StaffID string

	// WorkDate is the calendar day in the salon timezone.
	WorkDate time.Time

	CheckIn1Time *time.Time
	CheckIn2Time *time.Time
	CheckIn3Time *time.Time
	CheckIn4Time *time.Time

	CheckIn1PhotoURL *string
	CheckIn2PhotoURL *string
	CheckIn3PhotoURL *string
	CheckIn4PhotoURL *string

	ScheduledStart      time.Time
	ScheduledEnd        time.Time
	ScheduledBreakStart *time.Time
	ScheduledBreakEnd   *time.Time

	CheckCount int

	LateMinutes       int
	OverBreakMinutes  int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	TotalWorkMinutes  int

	LatePenalty       decimal.Decimal
	OverBreakPenalty  decimal.Decimal
	EarlyLeavePenalty decimal.Decimal
	TotalPenalty      decimal.Decimal

	Note   *string
	Status Status

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
	StatusAbsent     Status = "absent"
)

// NextCheckType returns the check type the state machine expects next,
// or 0 when the day is complete.
func (a Attendance) NextCheckType() int {
	if a.CheckCount >= CheckTypeDeparture {
		return 0
	}
	return a.CheckCount + 1
}

// CheckTime returns the recorded timestamp for a check type.
func (a Attendance) CheckTime(checkType int) *time.Time {
	switch checkType {
	case CheckTypeArrival:
		return a.CheckIn1Time
	case CheckTypeBreakStart:
		return a.CheckIn2Time
	case CheckTypeBreakResume:
		return a.CheckIn3Time
	case CheckTypeDeparture:
		return a.CheckIn4Time
	}
	return nil
}

// SetCheckTime records the timestamp for a check type.
func (a *Attendance) SetCheckTime(checkType int, t time.Time) {
	switch checkType {
	case CheckTypeArrival:
		a.CheckIn1Time = &t
	case CheckTypeBreakStart:
		a.CheckIn2Time = &t
	case CheckTypeBreakResume:
		a.CheckIn3Time = &t
	case CheckTypeDeparture:
		a.CheckIn4Time = &t
	}
}

// SetPhotoURL records the stored photo URL for a check type.
func (a *Attendance) SetPhotoURL(checkType int, url string) {
	switch checkType {
	case CheckTypeArrival:
		a.CheckIn1PhotoURL = &url
	case CheckTypeBreakStart:
		a.CheckIn2PhotoURL = &url
	case CheckTypeBreakResume:
		a.CheckIn3PhotoURL = &url
	case CheckTypeDeparture:
		a.CheckIn4PhotoURL = &url
	}
}

// HasLateness reports whether the day carries any penalized minutes.
func (a Attendance) HasLateness() bool {
	return a.LateMinutes > 0 || a.OverBreakMinutes > 0 || a.EarlyLeaveMinutes > 0
}
