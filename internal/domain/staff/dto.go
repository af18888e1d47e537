package staff

import "github.com/shopspring/decimal"

type StaffResponse struct {
	ID                string           `json:"id"`
	FullName          string           `json:"full_name"`
	PhoneNumber       *string          `json:"phone_number,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	CommissionPercent int              `json:"commission_percent"`
	Status            string           `json:"status"`
}
