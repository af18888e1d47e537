package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, user_id, full_name, phone_number, base_salary, commission_percent, status, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID, &s.UserID, &s.FullName, &s.PhoneNumber, &s.BaseSalary,
		&s.CommissionPercent, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, newStaff staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (user_id, full_name, phone_number, base_salary, commission_percent, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newStaff.UserID,
		newStaff.FullName,
		newStaff.PhoneNumber,
		newStaff.BaseSalary,
		newStaff.CommissionPercent,
		newStaff.Status,
	).Scan(&newStaff.ID, &newStaff.CreatedAt, &newStaff.UpdatedAt)

	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return newStaff, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	s, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by ID: %w", err)
	}
	return s, nil
}

// GetByUserID implements staff.StaffRepository.
func (r *staffRepository) GetByUserID(ctx context.Context, userID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE user_id = $1`

	s, err := scanStaff(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by user ID: %w", err)
	}
	return s, nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context, status *staff.Status) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// ListActiveIDs implements staff.StaffRepository.
func (r *staffRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM staff WHERE status = $1`, staff.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan staff id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
