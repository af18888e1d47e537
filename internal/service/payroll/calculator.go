package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
)

var sixty = decimal.NewFromInt(60)

// Rates groups the fixed monetary rates fed into a slip computation.
type Rates struct {
	PenaltyPerMinute    decimal.Decimal
	OvertimeRatePerHour decimal.Decimal
	MissedCheckPenalty  decimal.Decimal
	DefaultBaseSalary   decimal.Decimal
}

// computeSlip derives the full monthly breakdown from the staff record,
// the period's attendance rows and the completed booking revenue. Pure
// arithmetic; no IO.
func computeSlip(st staff.Staff, month, year int, days []attendance.Attendance, revenue decimal.Decimal, rates Rates) payroll.SalarySlip {
	slip := payroll.SalarySlip{
		StaffID:    st.ID,
		Month:      month,
		Year:       year,
		BaseSalary: st.EffectiveBaseSalary(rates.DefaultBaseSalary),
		Status:     payroll.SlipStatusDraft,
	}

	for _, day := range days {
		if day.Status == attendance.StatusComplete {
			slip.ActualWorkDays++
		}
		if day.CheckCount > 0 && day.CheckCount < attendance.CheckTypeDeparture {
			slip.MissedCheckDays++
		}
		if day.HasLateness() {
			slip.LateCount++
		}
		slip.TotalLateMinutes += day.LateMinutes + day.OverBreakMinutes + day.EarlyLeaveMinutes
		slip.TotalOvertimeMinutes += day.OvertimeMinutes
	}

	commissionPercent := decimal.NewFromInt(int64(st.EffectiveCommissionPercent()))
	slip.TotalRevenue = revenue
	slip.CommissionBonus = revenue.Mul(commissionPercent).Div(decimal.NewFromInt(100))
	slip.OvertimeBonus = decimal.NewFromInt(int64(slip.TotalOvertimeMinutes)).
		Div(sixty).
		Mul(rates.OvertimeRatePerHour)
	slip.GrossIncome = slip.BaseSalary.Add(slip.CommissionBonus).Add(slip.OvertimeBonus)

	slip.LatePenalty = decimal.NewFromInt(int64(slip.TotalLateMinutes)).Mul(rates.PenaltyPerMinute)
	slip.MissedCheckPenalty = decimal.NewFromInt(int64(slip.MissedCheckDays)).Mul(rates.MissedCheckPenalty)
	slip.BHXH = slip.BaseSalary.Mul(payroll.BHXHRate)
	slip.BHYT = slip.BaseSalary.Mul(payroll.BHYTRate)
	slip.BHTN = slip.BaseSalary.Mul(payroll.BHTNRate)
	slip.TotalDeductions = slip.LatePenalty.
		Add(slip.MissedCheckPenalty).
		Add(slip.BHXH).
		Add(slip.BHYT).
		Add(slip.BHTN)

	slip.NetSalary = slip.GrossIncome.Sub(slip.TotalDeductions)
	if slip.NetSalary.IsNegative() {
		slip.NetSalary = decimal.Zero
	}

	return slip
}
