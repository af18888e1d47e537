package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, staff_id, work_date,
	check_in_1_time, check_in_2_time, check_in_3_time, check_in_4_time,
	check_in_1_photo_url, check_in_2_photo_url, check_in_3_photo_url, check_in_4_photo_url,
	scheduled_start, scheduled_end, scheduled_break_start, scheduled_break_end,
	check_count, late_minutes, over_break_minutes, early_leave_minutes,
	overtime_minutes, total_work_minutes,
	late_penalty, over_break_penalty, early_leave_penalty, total_penalty,
	note, status, version, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.StaffID, &a.WorkDate,
		&a.CheckIn1Time, &a.CheckIn2Time, &a.CheckIn3Time, &a.CheckIn4Time,
		&a.CheckIn1PhotoURL, &a.CheckIn2PhotoURL, &a.CheckIn3PhotoURL, &a.CheckIn4PhotoURL,
		&a.ScheduledStart, &a.ScheduledEnd, &a.ScheduledBreakStart, &a.ScheduledBreakEnd,
		&a.CheckCount, &a.LateMinutes, &a.OverBreakMinutes, &a.EarlyLeaveMinutes,
		&a.OvertimeMinutes, &a.TotalWorkMinutes,
		&a.LatePenalty, &a.OverBreakPenalty, &a.EarlyLeavePenalty, &a.TotalPenalty,
		&a.Note, &a.Status, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			staff_id, work_date,
			scheduled_start, scheduled_end, scheduled_break_start, scheduled_break_end,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, check_count, version, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.StaffID,
		newAttendance.WorkDate,
		newAttendance.ScheduledStart,
		newAttendance.ScheduledEnd,
		newAttendance.ScheduledBreakStart,
		newAttendance.ScheduledBreakEnd,
		newAttendance.Status,
	).Scan(
		&newAttendance.ID, &newAttendance.CheckCount, &newAttendance.Version,
		&newAttendance.CreatedAt, &newAttendance.UpdatedAt,
	)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE staff_id = $1 AND work_date = $2 LIMIT 1`

	a, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no row for this date yet
		}
		return nil, fmt.Errorf("failed to get attendance by staff and date: %w", err)
	}

	return &a, nil
}

// UpdateChecked implements attendance.AttendanceRepository. The WHERE
// clause on version makes the check_count read-modify-write safe under
// concurrent duplicate submissions.
func (r *attendanceRepository) UpdateChecked(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			check_in_1_time = $1, check_in_2_time = $2, check_in_3_time = $3, check_in_4_time = $4,
			check_count = $5,
			late_minutes = $6, over_break_minutes = $7, early_leave_minutes = $8,
			overtime_minutes = $9, total_work_minutes = $10,
			late_penalty = $11, over_break_penalty = $12, early_leave_penalty = $13, total_penalty = $14,
			note = $15, status = $16,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $17 AND version = $18
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.CheckIn1Time, a.CheckIn2Time, a.CheckIn3Time, a.CheckIn4Time,
		a.CheckCount,
		a.LateMinutes, a.OverBreakMinutes, a.EarlyLeaveMinutes,
		a.OvertimeMinutes, a.TotalWorkMinutes,
		a.LatePenalty, a.OverBreakPenalty, a.EarlyLeavePenalty, a.TotalPenalty,
		a.Note, a.Status,
		a.ID, a.Version,
	).Scan(&a.Version, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrConcurrentCheck
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return a, nil
}

// SetPhotoURL implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetPhotoURL(ctx context.Context, id string, checkType int, url string) error {
	q := GetQuerier(ctx, r.db)

	if checkType < attendance.CheckTypeArrival || checkType > attendance.CheckTypeDeparture {
		return fmt.Errorf("invalid check type %d", checkType)
	}

	query := fmt.Sprintf(`UPDATE attendances SET check_in_%d_photo_url = $1, updated_at = NOW() WHERE id = $2`, checkType)
	if _, err := q.Exec(ctx, query, url, id); err != nil {
		return fmt.Errorf("failed to set attendance photo url: %w", err)
	}
	return nil
}

// ListByStaffAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByStaffAndPeriod(ctx context.Context, staffID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE staff_id = $1
		  AND EXTRACT(MONTH FROM work_date) = $2
		  AND EXTRACT(YEAR FROM work_date) = $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, staffID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for period: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// MarkUnstartedAbsent implements attendance.AttendanceRepository.
func (r *attendanceRepository) MarkUnstartedAbsent(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET status = $1, version = version + 1, updated_at = NOW()
		WHERE work_date = $2 AND check_count = 0 AND status = $3
	`

	tag, err := q.Exec(ctx, query, attendance.StatusAbsent, date, attendance.StatusIncomplete)
	if err != nil {
		return 0, fmt.Errorf("failed to mark unstarted attendances absent: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListStaffIDsWithRow implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListStaffIDsWithRow(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT staff_id FROM attendances WHERE work_date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff ids with attendance: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan staff id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
