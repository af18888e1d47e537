package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a completed service booking as exposed by the booking
// subsystem. Only the fields the commission calculation needs are
// modeled here; booking administration lives elsewhere.
type Booking struct {
	ID          string
	StaffID     string
	ServiceName string
	Amount      decimal.Decimal
	CompletedAt time.Time
}
