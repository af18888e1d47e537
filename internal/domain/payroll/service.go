package payroll

import "context"

// PayrollService computes and manages monthly salary slips.
type PayrollService interface {
	// GetSlip returns the persisted slip for the period when one exists;
	// otherwise it computes an ephemeral draft from attendance and
	// booking data without persisting anything.
	GetSlip(ctx context.Context, staffID string, month, year int) (SalarySlipResponse, error)

	// GenerateSlip computes and persists a draft slip for the period.
	GenerateSlip(ctx context.Context, staffID string, month, year int) (SalarySlipResponse, error)

	ConfirmSlip(ctx context.Context, id string) (SalarySlipResponse, error)
	MarkPaid(ctx context.Context, id string) (SalarySlipResponse, error)

	History(ctx context.Context, staffID string, limit int) (SalaryHistoryResponse, error)
	ListByPeriod(ctx context.Context, month, year int) ([]SalarySlipResponse, error)
}
