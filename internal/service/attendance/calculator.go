package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
)

// minutesAfter returns the whole minutes t lies after threshold, never
// negative.
func minutesAfter(t, threshold time.Time) int {
	if !t.After(threshold) {
		return 0
	}
	return int(t.Sub(threshold).Minutes())
}

func penaltyFor(minutes int, ratePerMinute decimal.Decimal) decimal.Decimal {
	if minutes <= 0 {
		return decimal.Zero
	}
	return ratePerMinute.Mul(decimal.NewFromInt(int64(minutes)))
}

// applyCheckpoint mutates a with the derived values for one accepted
// checkpoint at time t. Callers have already validated the sequence;
// checkType is always a.CheckCount+1 here.
func applyCheckpoint(a *attendance.Attendance, checkType int, t time.Time, ratePerMinute decimal.Decimal) {
	switch checkType {
	case attendance.CheckTypeArrival:
		a.LateMinutes = minutesAfter(t, a.ScheduledStart)
		a.LatePenalty = penaltyFor(a.LateMinutes, ratePerMinute)

	case attendance.CheckTypeBreakStart:
		// timestamp only, no derived values

	case attendance.CheckTypeBreakResume:
		if a.ScheduledBreakEnd != nil {
			a.OverBreakMinutes = minutesAfter(t, *a.ScheduledBreakEnd)
			a.OverBreakPenalty = penaltyFor(a.OverBreakMinutes, ratePerMinute)
		}

	case attendance.CheckTypeDeparture:
		a.EarlyLeaveMinutes = minutesAfter(a.ScheduledEnd, t)
		a.EarlyLeavePenalty = penaltyFor(a.EarlyLeaveMinutes, ratePerMinute)

		// Overtime is rewarded through payroll, never penalized
		a.OvertimeMinutes = minutesAfter(t, a.ScheduledEnd)

		if a.CheckIn1Time != nil {
			// A late arrival is charged through LatePenalty; the work
			// total still counts from the scheduled start.
			start := *a.CheckIn1Time
			if start.After(a.ScheduledStart) {
				start = a.ScheduledStart
			}
			worked := t.Sub(start)
			if a.CheckIn2Time != nil && a.CheckIn3Time != nil {
				worked -= a.CheckIn3Time.Sub(*a.CheckIn2Time)
			}
			if worked < 0 {
				worked = 0
			}
			a.TotalWorkMinutes = int(worked.Minutes())
		}
		a.Status = attendance.StatusComplete
	}

	a.SetCheckTime(checkType, t)
	a.CheckCount = checkType
	a.TotalPenalty = a.LatePenalty.Add(a.OverBreakPenalty).Add(a.EarlyLeavePenalty)
}

// appendNote appends text to the day's running note, keeping the total
// under maxLen. Later text is truncated rather than rejected.
func appendNote(existing *string, text string, maxLen int) *string {
	if text == "" {
		return existing
	}

	joined := text
	if existing != nil && *existing != "" {
		joined = *existing + "; " + text
	}
	if len(joined) > maxLen {
		joined = joined[:maxLen]
	}
	return &joined
}
