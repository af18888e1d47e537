package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/booking"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
)

type fakeSlipRepo struct {
	slips  map[string]*payroll.SalarySlip
	nextID int
}

func newFakeSlipRepo() *fakeSlipRepo {
	return &fakeSlipRepo{slips: make(map[string]*payroll.SalarySlip)}
}

func (r *fakeSlipRepo) Create(_ context.Context, slip payroll.SalarySlip) (payroll.SalarySlip, error) {
	for _, existing := range r.slips {
		if existing.StaffID == slip.StaffID && existing.Month == slip.Month && existing.Year == slip.Year {
			return payroll.SalarySlip{}, payroll.ErrSlipAlreadyExists
		}
	}
	r.nextID++
	slip.ID = fmt.Sprintf("slip-%d", r.nextID)
	stored := slip
	r.slips[slip.ID] = &stored
	return slip, nil
}

func (r *fakeSlipRepo) GetByID(_ context.Context, id string) (payroll.SalarySlip, error) {
	slip, ok := r.slips[id]
	if !ok {
		return payroll.SalarySlip{}, payroll.ErrSlipNotFound
	}
	return *slip, nil
}

func (r *fakeSlipRepo) GetByStaffAndPeriod(_ context.Context, staffID string, month, year int) (*payroll.SalarySlip, error) {
	for _, slip := range r.slips {
		if slip.StaffID == staffID && slip.Month == month && slip.Year == year {
			copied := *slip
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSlipRepo) UpdateStatus(_ context.Context, slip payroll.SalarySlip, from payroll.SlipStatus) error {
	stored, ok := r.slips[slip.ID]
	if !ok || stored.Status != from {
		return payroll.ErrInvalidStatusTransition
	}
	stored.Status = slip.Status
	stored.PaidAt = slip.PaidAt
	return nil
}

func (r *fakeSlipRepo) ListByStaff(_ context.Context, staffID string, limit int) ([]payroll.SalarySlip, error) {
	var out []payroll.SalarySlip
	for _, slip := range r.slips {
		if slip.StaffID == staffID && len(out) < limit {
			out = append(out, *slip)
		}
	}
	return out, nil
}

func (r *fakeSlipRepo) ListByPeriod(_ context.Context, month, year int) ([]payroll.SalarySlip, error) {
	var out []payroll.SalarySlip
	for _, slip := range r.slips {
		if slip.Month == month && slip.Year == year {
			out = append(out, *slip)
		}
	}
	return out, nil
}

type fakeStaffReader struct {
	staff map[string]staff.Staff
}

func (r *fakeStaffReader) Create(_ context.Context, st staff.Staff) (staff.Staff, error) {
	return st, nil
}

func (r *fakeStaffReader) GetByID(_ context.Context, id string) (staff.Staff, error) {
	st, ok := r.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

func (r *fakeStaffReader) GetByUserID(_ context.Context, _ string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (r *fakeStaffReader) List(_ context.Context, _ *staff.Status) ([]staff.Staff, error) {
	return nil, nil
}

func (r *fakeStaffReader) ListActiveIDs(_ context.Context) ([]string, error) {
	return nil, nil
}

type fakeAttendanceReader struct {
	rows []attendance.Attendance
}

func (r *fakeAttendanceReader) Create(_ context.Context, row attendance.Attendance) (attendance.Attendance, error) {
	return row, nil
}

func (r *fakeAttendanceReader) GetByStaffAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceReader) UpdateChecked(_ context.Context, row attendance.Attendance) (attendance.Attendance, error) {
	return row, nil
}

func (r *fakeAttendanceReader) SetPhotoURL(_ context.Context, _ string, _ int, _ string) error {
	return nil
}

func (r *fakeAttendanceReader) ListByStaffAndPeriod(_ context.Context, _ string, _, _ int) ([]attendance.Attendance, error) {
	return r.rows, nil
}

func (r *fakeAttendanceReader) MarkUnstartedAbsent(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeAttendanceReader) ListStaffIDsWithRow(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

type fakeBookingRepo struct {
	revenue decimal.Decimal
}

func (r *fakeBookingRepo) SumCompletedAmount(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return r.revenue, nil
}

func (r *fakeBookingRepo) ListCompleted(_ context.Context, _ string, _, _ time.Time) ([]booking.Booking, error) {
	return nil, nil
}

type payrollFixture struct {
	svc        payroll.PayrollService
	slips      *fakeSlipRepo
	attendance *fakeAttendanceReader
	bookings   *fakeBookingRepo
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	f := &payrollFixture{
		slips:      newFakeSlipRepo(),
		attendance: &fakeAttendanceReader{},
		bookings:   &fakeBookingRepo{revenue: decimal.Zero},
	}
	staffRepo := &fakeStaffReader{staff: map[string]staff.Staff{
		"staff-1": {
			ID:                "staff-1",
			FullName:          "Linh Tran",
			BaseSalary:        decPtr(15000000),
			CommissionPercent: 10,
			Status:            staff.StatusActive,
		},
	}}
	f.svc = NewPayrollService(f.slips, staffRepo, f.attendance, f.bookings, loc, testRates)
	return f
}

func TestGetSlipComputesEphemeralDraft(t *testing.T) {
	f := newPayrollFixture(t)
	f.bookings.revenue = decimal.NewFromInt(2000000)

	result, err := f.svc.GetSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)

	assert.Empty(t, result.ID)
	assert.True(t, result.CommissionBonus.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, string(payroll.SlipStatusDraft), result.Status)
	// Nothing persisted
	assert.Empty(t, f.slips.slips)
}

func TestGetSlipReturnsPersistedUnchanged(t *testing.T) {
	f := newPayrollFixture(t)

	generated, err := f.svc.GenerateSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)
	require.NotEmpty(t, generated.ID)

	// Attendance data changes after the slip was persisted
	f.attendance.rows = []attendance.Attendance{
		{Status: attendance.StatusIncomplete, CheckCount: 1, LateMinutes: 120},
	}

	result, err := f.svc.GetSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, generated.ID, result.ID)
	assert.Equal(t, 0, result.TotalLateMinutes)
	assert.True(t, result.NetSalary.Equal(generated.NetSalary))
}

func TestGenerateSlipTwiceConflicts(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.svc.GenerateSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)

	_, err = f.svc.GenerateSlip(context.Background(), "staff-1", 3, 2026)
	assert.ErrorIs(t, err, payroll.ErrSlipAlreadyExists)
}

func TestSlipLifecycle(t *testing.T) {
	f := newPayrollFixture(t)

	generated, err := f.svc.GenerateSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)

	// Draft cannot be paid directly
	_, err = f.svc.MarkPaid(context.Background(), generated.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	confirmed, err := f.svc.ConfirmSlip(context.Background(), generated.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.SlipStatusConfirmed), confirmed.Status)

	paid, err := f.svc.MarkPaid(context.Background(), generated.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.SlipStatusPaid), paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// Paid slips are immutable
	_, err = f.svc.ConfirmSlip(context.Background(), generated.ID)
	assert.ErrorIs(t, err, payroll.ErrSlipAlreadyPaid)
	_, err = f.svc.MarkPaid(context.Background(), generated.ID)
	assert.ErrorIs(t, err, payroll.ErrSlipAlreadyPaid)
}

func TestGetSlipInvalidPeriod(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.svc.GetSlip(context.Background(), "staff-1", 13, 2026)
	assert.Error(t, err)
}

func TestGetSlipUnknownStaff(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.svc.GetSlip(context.Background(), "nobody", 3, 2026)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestHistoryAndListByPeriod(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.svc.GenerateSlip(context.Background(), "staff-1", 3, 2026)
	require.NoError(t, err)

	history, err := f.svc.History(context.Background(), "staff-1", 0)
	require.NoError(t, err)
	require.Len(t, history.Slips, 1)
	assert.Equal(t, 3, history.Slips[0].Month)

	slips, err := f.svc.ListByPeriod(context.Background(), 3, 2026)
	require.NoError(t, err)
	assert.Len(t, slips, 1)
}
