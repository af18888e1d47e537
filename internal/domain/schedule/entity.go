package schedule

import "time"

// StaffSchedule is one weekday row of a staff member's weekly schedule.
// At most one row may exist per (staff_id, day_of_week).
type StaffSchedule struct {
	ID             string
	StaffID        string
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	StartTime      time.Time
	EndTime        time.Time
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ShiftWindow is the expected working window for one staff member on one
// date, expressed in the salon timezone. Snapshotted into the attendance
// row when it is first created; later schedule edits do not touch
// existing rows.
type ShiftWindow struct {
	Start      time.Time
	End        time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
}

// HasBreak reports whether the window includes a scheduled break.
func (w ShiftWindow) HasBreak() bool {
	return w.BreakStart != nil && w.BreakEnd != nil
}
