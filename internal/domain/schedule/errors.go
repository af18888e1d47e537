package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrDuplicateWeekday  = errors.New("schedule already exists for this staff member and weekday")
	ErrInvalidTimeWindow = errors.New("schedule end time must be after start time")
)
