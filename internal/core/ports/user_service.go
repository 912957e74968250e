package ports

import (
	"context"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// UserService exposes the admin roster management operations.
type UserService interface {
	// CreateNurse registers a new nurse account. The username is lowercased
	// and must be unique; the password must satisfy the password policy.
	CreateNurse(ctx context.Context, username, password string) (*domain.User, error)
	// ListStaff returns every non-admin account, ordered by username.
	ListStaff(ctx context.Context) ([]domain.User, error)
	// DeleteUser removes an account; its planning entries cascade away.
	DeleteUser(ctx context.Context, id string) error
}
