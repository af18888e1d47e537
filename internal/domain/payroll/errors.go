package payroll

import "errors"

var (
	ErrSlipNotFound            = errors.New("salary slip not found")
	ErrSlipAlreadyExists       = errors.New("salary slip already exists for this period")
	ErrSlipAlreadyPaid         = errors.New("salary slip already paid, cannot modify")
	ErrInvalidStatusTransition = errors.New("salary slip status can only move draft -> confirmed -> paid")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
)
