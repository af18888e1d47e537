package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows.
type AttendanceRepository interface {
	// Create inserts a new row for (staff_id, work_date).
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByStaffAndDate returns the row for one staff member and date,
	// or nil when none exists yet.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	// UpdateChecked persists a checkpoint mutation. The update is
	// conditional on the row version; a stale version returns
	// ErrConcurrentCheck and writes nothing.
	UpdateChecked(ctx context.Context, attendance Attendance) (Attendance, error)

	// SetPhotoURL records a stored photo URL after the checkpoint
	// transaction has committed. Best effort; does not touch version.
	SetPhotoURL(ctx context.Context, id string, checkType int, url string) error

	// ListByStaffAndPeriod returns all rows for a staff member within a
	// calendar month, ordered by work_date.
	ListByStaffAndPeriod(ctx context.Context, staffID string, month, year int) ([]Attendance, error)

	// MarkUnstartedAbsent flips rows on date with zero checkpoints to
	// absent and returns how many changed.
	MarkUnstartedAbsent(ctx context.Context, date time.Time) (int64, error)

	// ListStaffIDsWithRow returns staff ids that already have a row on
	// date, used by absent reconciliation.
	ListStaffIDsWithRow(ctx context.Context, date time.Time) ([]string, error)
}
