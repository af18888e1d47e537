package payroll

import (
	"context"
	"time"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/booking"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
)

const defaultHistoryLimit = 12

type PayrollServiceImpl struct {
	payroll.SalarySlipRepository
	staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	bookingRepo    booking.BookingRepository

	loc   *time.Location
	rates Rates
}

func NewPayrollService(
	slipRepo payroll.SalarySlipRepository,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	bookingRepo booking.BookingRepository,
	loc *time.Location,
	rates Rates,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		SalarySlipRepository: slipRepo,
		StaffRepository:      staffRepo,
		attendanceRepo:       attendanceRepo,
		bookingRepo:          bookingRepo,
		loc:                  loc,
		rates:                rates,
	}
}

// periodBounds returns the [from, to) window covering one calendar month
// in the salon timezone.
func (s *PayrollServiceImpl) periodBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	return from, from.AddDate(0, 1, 0)
}

// compute builds an unpersisted draft for the period from attendance and
// booking data.
func (s *PayrollServiceImpl) compute(ctx context.Context, st staff.Staff, month, year int) (payroll.SalarySlip, error) {
	days, err := s.attendanceRepo.ListByStaffAndPeriod(ctx, st.ID, month, year)
	if err != nil {
		return payroll.SalarySlip{}, err
	}

	from, to := s.periodBounds(month, year)
	revenue, err := s.bookingRepo.SumCompletedAmount(ctx, st.ID, from, to)
	if err != nil {
		return payroll.SalarySlip{}, err
	}

	slip := computeSlip(st, month, year, days, revenue, s.rates)
	slip.StaffName = &st.FullName
	return slip, nil
}

// GetSlip implements payroll.PayrollService. A persisted slip is
// authoritative; only when none exists is an ephemeral draft computed.
func (s *PayrollServiceImpl) GetSlip(ctx context.Context, staffID string, month, year int) (payroll.SalarySlipResponse, error) {
	req := payroll.PeriodRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	st, err := s.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	persisted, err := s.SalarySlipRepository.GetByStaffAndPeriod(ctx, staffID, month, year)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}
	if persisted != nil {
		return mapSlipToResponse(*persisted, s.loc), nil
	}

	slip, err := s.compute(ctx, st, month, year)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}
	return mapSlipToResponse(slip, s.loc), nil
}

// GenerateSlip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateSlip(ctx context.Context, staffID string, month, year int) (payroll.SalarySlipResponse, error) {
	req := payroll.PeriodRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	st, err := s.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	slip, err := s.compute(ctx, st, month, year)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	created, err := s.SalarySlipRepository.Create(ctx, slip)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}
	created.StaffName = &st.FullName
	return mapSlipToResponse(created, s.loc), nil
}

func (s *PayrollServiceImpl) transition(ctx context.Context, id string, next payroll.SlipStatus) (payroll.SalarySlipResponse, error) {
	slip, err := s.SalarySlipRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	if slip.Status == payroll.SlipStatusPaid {
		return payroll.SalarySlipResponse{}, payroll.ErrSlipAlreadyPaid
	}
	if !slip.Status.CanTransitionTo(next) {
		return payroll.SalarySlipResponse{}, payroll.ErrInvalidStatusTransition
	}

	from := slip.Status
	slip.Status = next
	if next == payroll.SlipStatusPaid {
		now := time.Now().In(s.loc)
		slip.PaidAt = &now
	}

	if err := s.SalarySlipRepository.UpdateStatus(ctx, slip, from); err != nil {
		return payroll.SalarySlipResponse{}, err
	}
	return mapSlipToResponse(slip, s.loc), nil
}

// ConfirmSlip implements payroll.PayrollService.
func (s *PayrollServiceImpl) ConfirmSlip(ctx context.Context, id string) (payroll.SalarySlipResponse, error) {
	return s.transition(ctx, id, payroll.SlipStatusConfirmed)
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.SalarySlipResponse, error) {
	return s.transition(ctx, id, payroll.SlipStatusPaid)
}

// History implements payroll.PayrollService.
func (s *PayrollServiceImpl) History(ctx context.Context, staffID string, limit int) (payroll.SalaryHistoryResponse, error) {
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return payroll.SalaryHistoryResponse{}, err
	}

	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}

	slips, err := s.SalarySlipRepository.ListByStaff(ctx, staffID, limit)
	if err != nil {
		return payroll.SalaryHistoryResponse{}, err
	}

	summaries := make([]payroll.SlipSummaryResponse, 0, len(slips))
	for _, slip := range slips {
		summaries = append(summaries, payroll.SlipSummaryResponse{
			ID:        slip.ID,
			Month:     slip.Month,
			Year:      slip.Year,
			NetSalary: slip.NetSalary,
			Status:    string(slip.Status),
			PaidAt:    timePtrToString(slip.PaidAt, s.loc),
		})
	}
	return payroll.SalaryHistoryResponse{Slips: summaries}, nil
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.SalarySlipResponse, error) {
	req := payroll.PeriodRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slips, err := s.SalarySlipRepository.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalarySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, mapSlipToResponse(slip, s.loc))
	}
	return responses, nil
}

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("2006-01-02 15:04:05")
	return &s
}

func mapSlipToResponse(slip payroll.SalarySlip, loc *time.Location) payroll.SalarySlipResponse {
	return payroll.SalarySlipResponse{
		ID:        slip.ID,
		StaffID:   slip.StaffID,
		StaffName: slip.StaffName,
		Month:     slip.Month,
		Year:      slip.Year,

		BaseSalary: slip.BaseSalary,

		ActualWorkDays:       slip.ActualWorkDays,
		MissedCheckDays:      slip.MissedCheckDays,
		LateCount:            slip.LateCount,
		TotalLateMinutes:     slip.TotalLateMinutes,
		TotalOvertimeMinutes: slip.TotalOvertimeMinutes,

		TotalRevenue:    slip.TotalRevenue,
		CommissionBonus: slip.CommissionBonus,
		OvertimeBonus:   slip.OvertimeBonus,
		GrossIncome:     slip.GrossIncome,

		LatePenalty:        slip.LatePenalty,
		MissedCheckPenalty: slip.MissedCheckPenalty,
		BHXH:               slip.BHXH,
		BHYT:               slip.BHYT,
		BHTN:               slip.BHTN,
		TotalDeductions:    slip.TotalDeductions,

		NetSalary: slip.NetSalary,

		Status: string(slip.Status),
		PaidAt: timePtrToString(slip.PaidAt, loc),
	}
}
