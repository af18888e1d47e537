package staff

import "context"

// StaffService provisions and reads staff profiles.
type StaffService interface {
	// EnsureStaffProfile provisions a minimal staff profile for a user
	// holding an eligible role, or returns the existing one. Explicit and
	// idempotent; invoked once at login rather than hidden in query paths.
	EnsureStaffProfile(ctx context.Context, userID string) (Staff, error)

	GetStaff(ctx context.Context, id string) (StaffResponse, error)
	ListStaff(ctx context.Context, status *Status) ([]StaffResponse, error)
}
