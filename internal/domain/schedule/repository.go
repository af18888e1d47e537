package schedule

import "context"

type StaffScheduleRepository interface {
	// Upsert inserts or replaces the row for (staff_id, day_of_week).
	Upsert(ctx context.Context, row StaffSchedule) (StaffSchedule, error)

	// GetByStaffAndWeekday returns the row for one weekday, or
	// ErrScheduleNotFound.
	GetByStaffAndWeekday(ctx context.Context, staffID string, dayOfWeek int) (StaffSchedule, error)

	// ListByStaff returns all weekday rows for a staff member ordered by
	// day_of_week.
	ListByStaff(ctx context.Context, staffID string) ([]StaffSchedule, error)

	Delete(ctx context.Context, staffID string, dayOfWeek int) error
}
