package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type fakeScheduleRepo struct {
	rows map[int]schedule.StaffSchedule // keyed by weekday, single staff
}

func (r *fakeScheduleRepo) Upsert(_ context.Context, row schedule.StaffSchedule) (schedule.StaffSchedule, error) {
	r.rows[row.DayOfWeek] = row
	return row, nil
}

func (r *fakeScheduleRepo) GetByStaffAndWeekday(_ context.Context, _ string, dayOfWeek int) (schedule.StaffSchedule, error) {
	row, ok := r.rows[dayOfWeek]
	if !ok {
		return schedule.StaffSchedule{}, schedule.ErrScheduleNotFound
	}
	return row, nil
}

func (r *fakeScheduleRepo) ListByStaff(_ context.Context, _ string) ([]schedule.StaffSchedule, error) {
	var out []schedule.StaffSchedule
	for _, row := range r.rows {
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, _ string, dayOfWeek int) error {
	if _, ok := r.rows[dayOfWeek]; !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(r.rows, dayOfWeek)
	return nil
}

type fakeStaffRepo struct{}

func (fakeStaffRepo) Create(_ context.Context, st staff.Staff) (staff.Staff, error) { return st, nil }
func (fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	if id != "staff-1" {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return staff.Staff{ID: id, Status: staff.StatusActive}, nil
}
func (fakeStaffRepo) GetByUserID(_ context.Context, _ string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}
func (fakeStaffRepo) List(_ context.Context, _ *staff.Status) ([]staff.Staff, error) {
	return nil, nil
}
func (fakeStaffRepo) ListActiveIDs(_ context.Context) ([]string, error) { return nil, nil }

func newResolverFixture(t *testing.T) (*ScheduleServiceImpl, *fakeScheduleRepo, *time.Location) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	repo := &fakeScheduleRepo{rows: make(map[int]schedule.StaffSchedule)}
	svc := &ScheduleServiceImpl{
		scheduleRepo: repo,
		staffRepo:    fakeStaffRepo{},
		loc:          loc,
		defaultStart: mustClock("08:00"),
		defaultEnd:   mustClock("17:00"),
	}
	return svc, repo, loc
}

func TestResolveFallsBackToDefaultWindow(t *testing.T) {
	svc, _, loc := newResolverFixture(t)

	// A Monday with no schedule row
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	window, err := svc.Resolve(context.Background(), "staff-1", date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 8, 0, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2026, 3, 9, 17, 0, 0, 0, loc), window.End)
	assert.False(t, window.HasBreak())
}

func TestResolveUsesWeekdayRow(t *testing.T) {
	svc, repo, loc := newResolverFixture(t)

	bs := mustClock("12:00")
	be := mustClock("13:00")
	repo.rows[1] = schedule.StaffSchedule{
		StaffID:        "staff-1",
		DayOfWeek:      1, // Monday
		StartTime:      mustClock("09:30"),
		EndTime:        mustClock("18:30"),
		BreakStartTime: &bs,
		BreakEndTime:   &be,
	}

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	window, err := svc.Resolve(context.Background(), "staff-1", date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 9, 30, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2026, 3, 9, 18, 30, 0, 0, loc), window.End)
	require.True(t, window.HasBreak())
	assert.Equal(t, time.Date(2026, 3, 9, 12, 0, 0, 0, loc), *window.BreakStart)
}

func TestUpsertWeekRejectsDuplicateWeekday(t *testing.T) {
	svc, _, _ := newResolverFixture(t)

	_, err := svc.UpsertWeek(context.Background(), "staff-1", []schedule.UpsertScheduleRequest{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "17:00"},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
	})
	assert.ErrorIs(t, err, schedule.ErrDuplicateWeekday)
}

func TestUpsertWeekRejectsInvalidWindow(t *testing.T) {
	svc, _, _ := newResolverFixture(t)

	_, err := svc.UpsertWeek(context.Background(), "staff-1", []schedule.UpsertScheduleRequest{
		{DayOfWeek: 2, StartTime: "17:00", EndTime: "08:00"},
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestUpsertWeekUnknownStaff(t *testing.T) {
	svc, _, _ := newResolverFixture(t)

	_, err := svc.UpsertWeek(context.Background(), "ghost", []schedule.UpsertScheduleRequest{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "17:00"},
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
