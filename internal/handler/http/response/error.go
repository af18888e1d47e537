package response

import (
	"errors"
	"net/http"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/auth"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/payroll"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/user"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffNotEligible):
		Forbidden(w, "User role is not eligible for a staff profile")
	case errors.Is(err, staff.ErrStaffInactive):
		Forbidden(w, "Staff member is inactive")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrDuplicateWeekday):
		Conflict(w, "Schedule already exists for this weekday")
	case errors.Is(err, schedule.ErrInvalidTimeWindow):
		BadRequest(w, "Schedule end time must be after start time", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrOutOfSequence):
		Conflict(w, "Check type does not match the expected checkpoint")
	case errors.Is(err, attendance.ErrAlreadyComplete):
		Conflict(w, "All four checkpoints are already recorded for today")
	case errors.Is(err, attendance.ErrConcurrentCheck):
		Conflict(w, "Attendance was modified concurrently, please retry")
	case errors.Is(err, attendance.ErrDeviceTimeSkew):
		BadRequest(w, "Device time is too far from server time", nil)
	case errors.Is(err, attendance.ErrReconcileFutureDate):
		BadRequest(w, "Cannot reconcile attendance for today or a future date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, payroll.ErrSlipAlreadyExists):
		Conflict(w, "Salary slip already exists for this period")
	case errors.Is(err, payroll.ErrSlipAlreadyPaid):
		Conflict(w, "Salary slip is already paid")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Salary slip status can only move draft -> confirmed -> paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
