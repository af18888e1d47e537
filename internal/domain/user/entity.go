package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleStylist      Role = "stylist"
	RoleReceptionist Role = "receptionist"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleStylist),
	string(RoleReceptionist),
}

// EligibleForStaffProfile reports whether users with this role get a
// staff profile provisioned at login. Admins manage the salon but do not
// appear on the attendance roster.
func (r Role) EligibleForStaffProfile() bool {
	return r == RoleStylist || r == RoleReceptionist
}
