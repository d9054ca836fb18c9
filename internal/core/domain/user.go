package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User models a registered account. Role defaults to "member"; "admin"
// unlocks the management routes.
type User struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
