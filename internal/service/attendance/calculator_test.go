package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
)

var testRate = decimal.NewFromInt(5000)

func testDay(t *testing.T, withBreak bool) attendance.Attendance {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	day := attendance.Attendance{
		ID:                "att-1",
		StaffID:           "staff-1",
		WorkDate:          date,
		ScheduledStart:    date.Add(8 * time.Hour),
		ScheduledEnd:      date.Add(17 * time.Hour),
		Status:            attendance.StatusIncomplete,
		LatePenalty:       decimal.Zero,
		OverBreakPenalty:  decimal.Zero,
		EarlyLeavePenalty: decimal.Zero,
		TotalPenalty:      decimal.Zero,
	}
	if withBreak {
		breakStart := date.Add(12 * time.Hour)
		breakEnd := date.Add(13 * time.Hour)
		day.ScheduledBreakStart = &breakStart
		day.ScheduledBreakEnd = &breakEnd
	}
	return day
}

func at(day attendance.Attendance, hour, minute int) time.Time {
	return day.WorkDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestMinutesAfter(t *testing.T) {
	base := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, minutesAfter(base, base))
	assert.Equal(t, 0, minutesAfter(base.Add(-5*time.Minute), base))
	assert.Equal(t, 5, minutesAfter(base.Add(5*time.Minute), base))
	// partial minutes round down
	assert.Equal(t, 5, minutesAfter(base.Add(5*time.Minute+45*time.Second), base))
}

func TestApplyCheckpointOnTimeArrival(t *testing.T) {
	day := testDay(t, true)

	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 7, 55), testRate)

	assert.Equal(t, 0, day.LateMinutes)
	assert.True(t, day.LatePenalty.IsZero())
	assert.Equal(t, 1, day.CheckCount)
	assert.Equal(t, 2, day.NextCheckType())
	require.NotNil(t, day.CheckIn1Time)
	assert.Equal(t, attendance.StatusIncomplete, day.Status)
}

func TestApplyCheckpointLateArrival(t *testing.T) {
	day := testDay(t, true)

	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 8, 20), testRate)

	assert.Equal(t, 20, day.LateMinutes)
	assert.True(t, day.LatePenalty.Equal(decimal.NewFromInt(100000)))
	assert.True(t, day.TotalPenalty.Equal(decimal.NewFromInt(100000)))
}

func TestApplyCheckpointOverBreak(t *testing.T) {
	day := testDay(t, true)
	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 8, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakStart, at(day, 12, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakResume, at(day, 13, 10), testRate)

	assert.Equal(t, 10, day.OverBreakMinutes)
	assert.True(t, day.OverBreakPenalty.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 3, day.CheckCount)
}

func TestApplyCheckpointBreakResumeWithoutScheduledBreak(t *testing.T) {
	day := testDay(t, false)
	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 8, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakStart, at(day, 12, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakResume, at(day, 14, 0), testRate)

	// No scheduled break, so no over-break charge
	assert.Equal(t, 0, day.OverBreakMinutes)
	assert.True(t, day.OverBreakPenalty.IsZero())
}

func TestApplyCheckpointEarlyLeave(t *testing.T) {
	day := testDay(t, true)
	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 8, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakStart, at(day, 12, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakResume, at(day, 13, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeDeparture, at(day, 16, 30), testRate)

	assert.Equal(t, 30, day.EarlyLeaveMinutes)
	assert.True(t, day.EarlyLeavePenalty.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, 0, day.OvertimeMinutes)
	assert.Equal(t, attendance.StatusComplete, day.Status)
}

func TestFullDayScenario(t *testing.T) {
	// Schedule 08:00-17:00 with break 12:00-13:00; checks at 08:05,
	// 12:00, 13:00, 17:30.
	day := testDay(t, true)

	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 8, 5), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakStart, at(day, 12, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakResume, at(day, 13, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeDeparture, at(day, 17, 30), testRate)

	assert.Equal(t, 5, day.LateMinutes)
	assert.Equal(t, 0, day.OverBreakMinutes)
	assert.Equal(t, 0, day.EarlyLeaveMinutes)
	assert.Equal(t, 30, day.OvertimeMinutes)
	// Work counts from the scheduled 08:00 start despite the late
	// arrival: 08:00 to 17:30 is 570 minutes, minus the 60 minute break.
	assert.Equal(t, 510, day.TotalWorkMinutes)
	assert.Equal(t, attendance.StatusComplete, day.Status)
	assert.Equal(t, 0, day.NextCheckType())
	assert.True(t, day.TotalPenalty.Equal(decimal.NewFromInt(25000)))
}

func TestApplyCheckpointWorkMinutesEarlyArrival(t *testing.T) {
	day := testDay(t, true)
	applyCheckpoint(&day, attendance.CheckTypeArrival, at(day, 7, 45), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakStart, at(day, 12, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeBreakResume, at(day, 13, 0), testRate)
	applyCheckpoint(&day, attendance.CheckTypeDeparture, at(day, 17, 0), testRate)

	// Early arrival counts from the actual check-in: 07:45 to 17:00 is
	// 555 minutes, minus the 60 minute break.
	assert.Equal(t, 0, day.LateMinutes)
	assert.Equal(t, 495, day.TotalWorkMinutes)
}

func TestAppendNote(t *testing.T) {
	note := appendNote(nil, "traffic jam", 500)
	require.NotNil(t, note)
	assert.Equal(t, "traffic jam", *note)

	note = appendNote(note, "left early for appointment", 500)
	require.NotNil(t, note)
	assert.Equal(t, "traffic jam; left early for appointment", *note)

	// empty text leaves the note untouched
	same := appendNote(note, "", 500)
	assert.Equal(t, note, same)
}

func TestAppendNoteTruncates(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}

	note := appendNote(nil, string(long), 500)
	require.NotNil(t, note)
	assert.Len(t, *note, 500)
}
