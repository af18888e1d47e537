package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statutory contribution rates on base salary (employee side).
var (
	BHXHRate = decimal.RequireFromString("0.08")  // social insurance
	BHYTRate = decimal.RequireFromString("0.015") // health insurance
	BHTNRate = decimal.RequireFromString("0.01")  // unemployment insurance
)

type SlipStatus string

const (
	SlipStatusDraft     SlipStatus = "draft"
	SlipStatusConfirmed SlipStatus = "confirmed"
	SlipStatusPaid      SlipStatus = "paid"
)

// CanTransitionTo enforces the one-way Draft -> Confirmed -> Paid flow.
func (s SlipStatus) CanTransitionTo(next SlipStatus) bool {
	switch s {
	case SlipStatusDraft:
		return next == SlipStatusConfirmed
	case SlipStatusConfirmed:
		return next == SlipStatusPaid
	}
	return false
}

// SalarySlip is the monthly payroll breakdown for one staff member. At
// most one row exists per (staff_id, month, year). A persisted slip is
// authoritative; it is never silently recomputed.
type SalarySlip struct {
	ID      string
	StaffID string
	Month   int
	Year    int

	BaseSalary decimal.Decimal

	// Attendance aggregates
	ActualWorkDays       int
	MissedCheckDays      int
	LateCount            int
	TotalLateMinutes     int
	TotalOvertimeMinutes int

	// Earnings
	TotalRevenue    decimal.Decimal
	CommissionBonus decimal.Decimal
	OvertimeBonus   decimal.Decimal
	GrossIncome     decimal.Decimal

	// Deductions
	LatePenalty        decimal.Decimal
	MissedCheckPenalty decimal.Decimal
	BHXH               decimal.Decimal
	BHYT               decimal.Decimal
	BHTN               decimal.Decimal
	TotalDeductions    decimal.Decimal

	NetSalary decimal.Decimal

	Status SlipStatus
	PaidAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	StaffName *string
}
