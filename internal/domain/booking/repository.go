package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BookingRepository is the read-only boundary to the booking subsystem's
// revenue data.
type BookingRepository interface {
	// SumCompletedAmount totals completed booking revenue for one staff
	// member within [from, to).
	SumCompletedAmount(ctx context.Context, staffID string, from, to time.Time) (decimal.Decimal, error)

	// ListCompleted returns the completed bookings within [from, to),
	// oldest first.
	ListCompleted(ctx context.Context, staffID string, from, to time.Time) ([]Booking, error)
}
