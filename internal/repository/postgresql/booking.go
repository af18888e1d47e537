package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/booking"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
)

type bookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepository{db: db}
}

// SumCompletedAmount implements booking.BookingRepository.
func (r *bookingRepository) SumCompletedAmount(ctx context.Context, staffID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM bookings
		WHERE staff_id = $1
		  AND status = 'completed'
		  AND completed_at >= $2
		  AND completed_at < $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, staffID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed booking revenue: %w", err)
	}
	return total, nil
}

// ListCompleted implements booking.BookingRepository.
func (r *bookingRepository) ListCompleted(ctx context.Context, staffID string, from, to time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, service_name, amount, completed_at
		FROM bookings
		WHERE staff_id = $1
		  AND status = 'completed'
		  AND completed_at >= $2
		  AND completed_at < $3
		ORDER BY completed_at
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed bookings: %w", err)
	}
	defer rows.Close()

	var result []booking.Booking
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(&b.ID, &b.StaffID, &b.ServiceName, &b.Amount, &b.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
