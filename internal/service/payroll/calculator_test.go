package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
)

var testRates = Rates{
	PenaltyPerMinute:    decimal.NewFromInt(5000),
	OvertimeRatePerHour: decimal.NewFromInt(50000),
	MissedCheckPenalty:  decimal.NewFromInt(100000),
	DefaultBaseSalary:   decimal.NewFromInt(5000000),
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestComputeSlipCommissionScenario(t *testing.T) {
	// Base 15,000,000, commission 10%, revenue 2,000,000, no overtime,
	// no penalties.
	st := staff.Staff{
		ID:                "staff-1",
		BaseSalary:        decPtr(15000000),
		CommissionPercent: 10,
	}
	days := []attendance.Attendance{
		{Status: attendance.StatusComplete, CheckCount: 4},
		{Status: attendance.StatusComplete, CheckCount: 4},
	}

	slip := computeSlip(st, 3, 2026, days, decimal.NewFromInt(2000000), testRates)

	assert.Equal(t, 2, slip.ActualWorkDays)
	assert.True(t, slip.CommissionBonus.Equal(decimal.NewFromInt(200000)))
	assert.True(t, slip.GrossIncome.Equal(decimal.NewFromInt(15200000)))

	// Statutory contributions: 8% + 1.5% + 1% of base salary
	expectedStatutory := decimal.NewFromInt(15000000).
		Mul(payroll.BHXHRate.Add(payroll.BHYTRate).Add(payroll.BHTNRate))
	assert.True(t, slip.TotalDeductions.Equal(expectedStatutory))
	assert.True(t, slip.NetSalary.Equal(slip.GrossIncome.Sub(expectedStatutory)))
	assert.Equal(t, payroll.SlipStatusDraft, slip.Status)
}

func TestComputeSlipDefaultsApply(t *testing.T) {
	// No base salary and no commission configured
	st := staff.Staff{ID: "staff-1"}

	slip := computeSlip(st, 3, 2026, nil, decimal.NewFromInt(1000000), testRates)

	assert.True(t, slip.BaseSalary.Equal(testRates.DefaultBaseSalary))
	// Default 10% commission
	assert.True(t, slip.CommissionBonus.Equal(decimal.NewFromInt(100000)))
}

func TestComputeSlipAttendanceAggregates(t *testing.T) {
	st := staff.Staff{ID: "staff-1", BaseSalary: decPtr(10000000), CommissionPercent: 10}
	days := []attendance.Attendance{
		{Status: attendance.StatusComplete, CheckCount: 4, LateMinutes: 15, OvertimeMinutes: 30},
		{Status: attendance.StatusComplete, CheckCount: 4, OverBreakMinutes: 10, EarlyLeaveMinutes: 5},
		{Status: attendance.StatusIncomplete, CheckCount: 2},
		{Status: attendance.StatusAbsent, CheckCount: 0},
	}

	slip := computeSlip(st, 3, 2026, days, decimal.Zero, testRates)

	assert.Equal(t, 2, slip.ActualWorkDays)
	assert.Equal(t, 1, slip.MissedCheckDays)
	assert.Equal(t, 2, slip.LateCount)
	assert.Equal(t, 30, slip.TotalLateMinutes)
	assert.Equal(t, 30, slip.TotalOvertimeMinutes)

	// 30 late minutes at 5,000 plus one missed-check day at 100,000
	assert.True(t, slip.LatePenalty.Equal(decimal.NewFromInt(150000)))
	assert.True(t, slip.MissedCheckPenalty.Equal(decimal.NewFromInt(100000)))
	// 30 overtime minutes at 50,000/hour
	assert.True(t, slip.OvertimeBonus.Equal(decimal.NewFromInt(25000)))
}

func TestComputeSlipNetSalaryNeverNegative(t *testing.T) {
	// Tiny base salary with massive penalties
	st := staff.Staff{ID: "staff-1", BaseSalary: decPtr(100000)}
	days := []attendance.Attendance{
		{Status: attendance.StatusIncomplete, CheckCount: 1, LateMinutes: 480},
	}

	slip := computeSlip(st, 3, 2026, days, decimal.Zero, testRates)

	assert.True(t, slip.TotalDeductions.GreaterThan(slip.GrossIncome))
	assert.True(t, slip.NetSalary.IsZero())
}
