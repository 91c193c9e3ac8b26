package domain

import "time"

// Role controls which route groups a user may call.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAccounts Role = "accounts"
	RoleWarden   Role = "warden"
	RoleFaculty  Role = "faculty"
	RoleViewer   Role = "viewer"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAccounts, RoleWarden, RoleFaculty, RoleViewer:
		return true
	}
	return false
}

// User is a staff login account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID             int64     `json:"-"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	DisplayName    string    `json:"displayName"`
	CreatedAt      time.Time `json:"createdAt"`
}
