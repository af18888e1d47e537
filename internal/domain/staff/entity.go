package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommissionPercent applies when a staff member has no explicit
// commission configured.
const DefaultCommissionPercent = 10

type Staff struct {
	ID                string
	UserID            *string
	FullName          string
	PhoneNumber       *string
	BaseSalary        *decimal.Decimal
	CommissionPercent int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// EffectiveCommissionPercent returns the configured commission, or the
// default when the stored value is zero or negative.
func (s Staff) EffectiveCommissionPercent() int {
	if s.CommissionPercent > 0 {
		return s.CommissionPercent
	}
	return DefaultCommissionPercent
}

// EffectiveBaseSalary returns the configured base salary, or fallback
// when none is set.
func (s Staff) EffectiveBaseSalary(fallback decimal.Decimal) decimal.Decimal {
	if s.BaseSalary != nil {
		return *s.BaseSalary
	}
	return fallback
}
