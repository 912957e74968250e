package ports

import (
	"context"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// AuthService handles authentication and credential changes.
type AuthService interface {
	// Login verifies the credentials (username matched case-insensitively)
	// and returns a signed token plus the user on success. Unknown user and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// ChangePassword verifies the current password and replaces it with a
	// new one satisfying the password policy.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
