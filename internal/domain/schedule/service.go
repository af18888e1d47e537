package schedule

import (
	"context"
	"time"
)

// ScheduleService resolves shift windows and manages weekly schedules.
type ScheduleService interface {
	// Resolve returns the expected shift window for a staff member on a
	// date. Falls back to the salon default window (no break) when no
	// weekday row exists. Side-effect free.
	Resolve(ctx context.Context, staffID string, date time.Time) (ShiftWindow, error)

	UpsertWeek(ctx context.Context, staffID string, rows []UpsertScheduleRequest) ([]ScheduleResponse, error)
	GetWeek(ctx context.Context, staffID string) ([]ScheduleResponse, error)
	DeleteDay(ctx context.Context, staffID string, dayOfWeek int) error
}
