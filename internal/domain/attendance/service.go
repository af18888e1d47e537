package attendance

import "context"

// AttendanceService drives the four-checkpoint day state machine.
type AttendanceService interface {
	// Today returns today's snapshot for a staff member, creating the
	// row with a resolved schedule snapshot when none exists yet.
	Today(ctx context.Context, staffID string) (AttendanceResponse, error)

	// Check records one checkpoint. The request is accepted only when
	// check_type equals the next expected checkpoint.
	Check(ctx context.Context, staffID string, req CheckRequest) (CheckResponse, error)

	// History lists day summaries for a calendar month.
	History(ctx context.Context, staffID string, month, year int) (HistoryResponse, error)

	// Stats aggregates a calendar month.
	Stats(ctx context.Context, staffID string, month, year int) (StatsResponse, error)

	// ReconcileAbsent marks unstarted days on a past date as absent.
	// Operator-triggered; there is no automatic timer.
	ReconcileAbsent(ctx context.Context, req ReconcileRequest) (ReconcileResponse, error)
}
