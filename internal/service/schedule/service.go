package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/repository/postgresql"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.StaffScheduleRepository
	staffRepo    staff.StaffRepository

	loc          *time.Location
	defaultStart time.Time // wall clock, date part ignored
	defaultEnd   time.Time
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.StaffScheduleRepository,
	staffRepo staff.StaffRepository,
	loc *time.Location,
	defaultStart, defaultEnd time.Time,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		staffRepo:    staffRepo,
		loc:          loc,
		defaultStart: defaultStart,
		defaultEnd:   defaultEnd,
	}
}

// onDate pins a wall-clock time onto a calendar date in the salon
// timezone.
func (s *ScheduleServiceImpl) onDate(date time.Time, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, s.loc)
}

// Resolve implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, staffID string, date time.Time) (schedule.ShiftWindow, error) {
	row, err := s.scheduleRepo.GetByStaffAndWeekday(ctx, staffID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			// Default salon window, no break
			return schedule.ShiftWindow{
				Start: s.onDate(date, s.defaultStart),
				End:   s.onDate(date, s.defaultEnd),
			}, nil
		}
		return schedule.ShiftWindow{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	window := schedule.ShiftWindow{
		Start: s.onDate(date, row.StartTime),
		End:   s.onDate(date, row.EndTime),
	}
	if row.BreakStartTime != nil && row.BreakEndTime != nil {
		bs := s.onDate(date, *row.BreakStartTime)
		be := s.onDate(date, *row.BreakEndTime)
		window.BreakStart = &bs
		window.BreakEnd = &be
	}
	return window, nil
}

// UpsertWeek implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpsertWeek(ctx context.Context, staffID string, rows []schedule.UpsertScheduleRequest) ([]schedule.ScheduleResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(rows))
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			return nil, err
		}
		if seen[rows[i].DayOfWeek] {
			return nil, schedule.ErrDuplicateWeekday
		}
		seen[rows[i].DayOfWeek] = true
	}

	// The week is saved atomically; a rejected row rolls back the rest
	responses := make([]schedule.ScheduleResponse, 0, len(rows))
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, req := range rows {
			row := schedule.StaffSchedule{
				StaffID:   staffID,
				DayOfWeek: req.DayOfWeek,
				StartTime: mustClock(req.StartTime),
				EndTime:   mustClock(req.EndTime),
			}
			if req.BreakStartTime != nil && req.BreakEndTime != nil {
				bs := mustClock(*req.BreakStartTime)
				be := mustClock(*req.BreakEndTime)
				row.BreakStartTime = &bs
				row.BreakEndTime = &be
			}

			saved, err := s.scheduleRepo.Upsert(txCtx, row)
			if err != nil {
				return err
			}
			responses = append(responses, mapScheduleToResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save schedule week: %w", err)
	}
	return responses, nil
}

// GetWeek implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetWeek(ctx context.Context, staffID string) ([]schedule.ScheduleResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	rows, err := s.scheduleRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mapScheduleToResponse(row))
	}
	return responses, nil
}

// DeleteDay implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteDay(ctx context.Context, staffID string, dayOfWeek int) error {
	return s.scheduleRepo.Delete(ctx, staffID, dayOfWeek)
}

// mustClock parses a wall-clock string already checked by Validate.
func mustClock(s string) time.Time {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, _ = time.Parse("15:04:05", s)
	}
	return t
}

func clockString(t time.Time) string {
	return t.Format("15:04")
}

func clockPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := clockString(*t)
	return &s
}

func mapScheduleToResponse(row schedule.StaffSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:             row.ID,
		StaffID:        row.StaffID,
		DayOfWeek:      row.DayOfWeek,
		StartTime:      clockString(row.StartTime),
		EndTime:        clockString(row.EndTime),
		BreakStartTime: clockPtrToString(row.BreakStartTime),
		BreakEndTime:   clockPtrToString(row.BreakEndTime),
	}
}
