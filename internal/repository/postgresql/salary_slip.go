package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
)

type salarySlipRepository struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) payroll.SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

const slipColumns = `
	s.id, s.staff_id, s.month, s.year, s.base_salary,
	s.actual_work_days, s.missed_check_days, s.late_count,
	s.total_late_minutes, s.total_overtime_minutes,
	s.total_revenue, s.commission_bonus, s.overtime_bonus, s.gross_income,
	s.late_penalty, s.missed_check_penalty, s.bhxh, s.bhyt, s.bhtn, s.total_deductions,
	s.net_salary, s.status, s.paid_at, s.created_at, s.updated_at`

func scanSlip(row pgx.Row, withStaffName bool) (payroll.SalarySlip, error) {
	var s payroll.SalarySlip
	dest := []interface{}{
		&s.ID, &s.StaffID, &s.Month, &s.Year, &s.BaseSalary,
		&s.ActualWorkDays, &s.MissedCheckDays, &s.LateCount,
		&s.TotalLateMinutes, &s.TotalOvertimeMinutes,
		&s.TotalRevenue, &s.CommissionBonus, &s.OvertimeBonus, &s.GrossIncome,
		&s.LatePenalty, &s.MissedCheckPenalty, &s.BHXH, &s.BHYT, &s.BHTN, &s.TotalDeductions,
		&s.NetSalary, &s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	}
	if withStaffName {
		dest = append(dest, &s.StaffName)
	}
	err := row.Scan(dest...)
	return s, err
}

// Create implements payroll.SalarySlipRepository.
func (r *salarySlipRepository) Create(ctx context.Context, slip payroll.SalarySlip) (payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_slips (
			staff_id, month, year, base_salary,
			actual_work_days, missed_check_days, late_count,
			total_late_minutes, total_overtime_minutes,
			total_revenue, commission_bonus, overtime_bonus, gross_income,
			late_penalty, missed_check_penalty, bhxh, bhyt, bhtn, total_deductions,
			net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.StaffID, slip.Month, slip.Year, slip.BaseSalary,
		slip.ActualWorkDays, slip.MissedCheckDays, slip.LateCount,
		slip.TotalLateMinutes, slip.TotalOvertimeMinutes,
		slip.TotalRevenue, slip.CommissionBonus, slip.OvertimeBonus, slip.GrossIncome,
		slip.LatePenalty, slip.MissedCheckPenalty, slip.BHXH, slip.BHYT, slip.BHTN, slip.TotalDeductions,
		slip.NetSalary, slip.Status,
	).Scan(&slip.ID, &slip.CreatedAt, &slip.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.SalarySlip{}, payroll.ErrSlipAlreadyExists
		}
		return payroll.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return slip, nil
}

// GetByID implements payroll.SalarySlipRepository.
func (r *salarySlipRepository) GetByID(ctx context.Context, id string) (payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `, st.full_name AS staff_name
		FROM salary_slips s
		LEFT JOIN staff st ON st.id = s.staff_id
		WHERE s.id = $1
	`

	s, err := scanSlip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalarySlip{}, payroll.ErrSlipNotFound
		}
		return payroll.SalarySlip{}, fmt.Errorf("failed to get salary slip by ID: %w", err)
	}
	return s, nil
}

// GetByStaffAndPeriod implements payroll.SalarySlipRepository.
func (r *salarySlipRepository) GetByStaffAndPeriod(ctx context.Context, staffID string, month, year int) (*payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `, st.full_name AS staff_name
		FROM salary_slips s
		LEFT JOIN staff st ON st.id = s.staff_id
		WHERE s.staff_id = $1 AND s.month = $2 AND s.year = $3
	`

	s, err := scanSlip(q.QueryRow(ctx, query, staffID, month, year), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no persisted slip for this period
		}
		return nil, fmt.Errorf("failed to get salary slip by period: %w", err)
	}
	return &s, nil
}

// UpdateStatus implements payroll.SalarySlipRepository. Conditional on
// the current status so a concurrent transition cannot be overwritten.
func (r *salarySlipRepository) UpdateStatus(ctx context.Context, slip payroll.SalarySlip, from payroll.SlipStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, slip.Status, slip.PaidAt, slip.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update salary slip status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrInvalidStatusTransition
	}
	return nil
}

// ListByStaff implements payroll.SalarySlipRepository.
func (r *salarySlipRepository) ListByStaff(ctx context.Context, staffID string, limit int) ([]payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `
		FROM salary_slips s
		WHERE s.staff_id = $1
		ORDER BY s.year DESC, s.month DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var result []payroll.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary slip row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// ListByPeriod implements payroll.SalarySlipRepository.
func (r *salarySlipRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `, st.full_name AS staff_name
		FROM salary_slips s
		LEFT JOIN staff st ON st.id = s.staff_id
		WHERE s.month = $1 AND s.year = $2
		ORDER BY st.full_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips for period: %w", err)
	}
	defer rows.Close()

	var result []payroll.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary slip row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
