package payroll

import "context"

type SalarySlipRepository interface {
	// Create inserts a new slip; a duplicate (staff_id, month, year)
	// returns ErrSlipAlreadyExists.
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)

	GetByID(ctx context.Context, id string) (SalarySlip, error)

	// GetByStaffAndPeriod returns nil when no slip is persisted for the
	// period.
	GetByStaffAndPeriod(ctx context.Context, staffID string, month, year int) (*SalarySlip, error)

	// UpdateStatus persists a lifecycle transition. Guards the one-way
	// flow at the SQL level as well: the update is conditional on the
	// current status.
	UpdateStatus(ctx context.Context, slip SalarySlip, from SlipStatus) error

	// ListByStaff returns the most recent slips, newest period first.
	ListByStaff(ctx context.Context, staffID string, limit int) ([]SalarySlip, error)

	// ListByPeriod returns all staff slips for one month.
	ListByPeriod(ctx context.Context, month, year int) ([]SalarySlip, error)
}
