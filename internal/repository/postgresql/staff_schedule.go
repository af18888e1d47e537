package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
)

type staffScheduleRepository struct {
	db *database.DB
}

func NewStaffScheduleRepository(db *database.DB) schedule.StaffScheduleRepository {
	return &staffScheduleRepository{db: db}
}

const scheduleColumns = `id, staff_id, day_of_week, start_time, end_time, break_start_time, break_end_time, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.StaffSchedule, error) {
	var s schedule.StaffSchedule
	err := row.Scan(
		&s.ID, &s.StaffID, &s.DayOfWeek, &s.StartTime, &s.EndTime,
		&s.BreakStartTime, &s.BreakEndTime, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Upsert implements schedule.StaffScheduleRepository. The unique
// (staff_id, day_of_week) constraint makes this a replace.
func (r *staffScheduleRepository) Upsert(ctx context.Context, row schedule.StaffSchedule) (schedule.StaffSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_schedules (staff_id, day_of_week, start_time, end_time, break_start_time, break_end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		row.StaffID,
		row.DayOfWeek,
		row.StartTime,
		row.EndTime,
		row.BreakStartTime,
		row.BreakEndTime,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)

	if err != nil {
		return schedule.StaffSchedule{}, fmt.Errorf("failed to upsert staff schedule: %w", err)
	}

	return row, nil
}

// GetByStaffAndWeekday implements schedule.StaffScheduleRepository.
func (r *staffScheduleRepository) GetByStaffAndWeekday(ctx context.Context, staffID string, dayOfWeek int) (schedule.StaffSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM staff_schedules WHERE staff_id = $1 AND day_of_week = $2`

	s, err := scanSchedule(q.QueryRow(ctx, query, staffID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.StaffSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.StaffSchedule{}, fmt.Errorf("failed to get staff schedule: %w", err)
	}
	return s, nil
}

// ListByStaff implements schedule.StaffScheduleRepository.
func (r *staffScheduleRepository) ListByStaff(ctx context.Context, staffID string) ([]schedule.StaffSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM staff_schedules WHERE staff_id = $1 ORDER BY day_of_week`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff schedules: %w", err)
	}
	defer rows.Close()

	var result []schedule.StaffSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff schedule row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Delete implements schedule.StaffScheduleRepository.
func (r *staffScheduleRepository) Delete(ctx context.Context, staffID string, dayOfWeek int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff_schedules WHERE staff_id = $1 AND day_of_week = $2`, staffID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("failed to delete staff schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
