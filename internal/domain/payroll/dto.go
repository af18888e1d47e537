package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type PeriodRequest struct {
	Month int
	Year  int
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SalarySlipResponse is the full monthly breakdown.
type SalarySlipResponse struct {
	ID        string  `json:"id,omitempty"` // empty for ephemeral drafts
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`

	BaseSalary decimal.Decimal `json:"base_salary"`

	ActualWorkDays       int `json:"actual_work_days"`
	MissedCheckDays      int `json:"missed_check_days"`
	LateCount            int `json:"late_count"`
	TotalLateMinutes     int `json:"total_late_minutes"`
	TotalOvertimeMinutes int `json:"total_overtime_minutes"`

	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CommissionBonus decimal.Decimal `json:"commission_bonus"`
	OvertimeBonus   decimal.Decimal `json:"overtime_bonus"`
	GrossIncome     decimal.Decimal `json:"gross_income"`

	LatePenalty        decimal.Decimal `json:"late_penalty"`
	MissedCheckPenalty decimal.Decimal `json:"missed_check_penalty"`
	BHXH               decimal.Decimal `json:"bhxh"`
	BHYT               decimal.Decimal `json:"bhyt"`
	BHTN               decimal.Decimal `json:"bhtn"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`

	NetSalary decimal.Decimal `json:"net_salary"`

	Status string  `json:"status"`
	PaidAt *string `json:"paid_at,omitempty"`
}

// SlipSummaryResponse is the condensed row for history listings.
type SlipSummaryResponse struct {
	ID        string          `json:"id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	NetSalary decimal.Decimal `json:"net_salary"`
	Status    string          `json:"status"`
	PaidAt    *string         `json:"paid_at,omitempty"`
}

type SalaryHistoryResponse struct {
	Slips []SlipSummaryResponse `json:"slips"`
}
