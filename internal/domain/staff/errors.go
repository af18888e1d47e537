package staff

import "errors"

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffNotEligible = errors.New("user role is not eligible for a staff profile")
	ErrStaffInactive    = errors.New("staff member is inactive")
)
