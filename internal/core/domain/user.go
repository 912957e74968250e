package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleNurse = "nurse"
)

// User models an authenticated actor in the system. Usernames are stored
// lowercase; callers normalize before lookup so login is case-insensitive.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
