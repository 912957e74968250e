package ports

import (
	"context"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername expects an already lowercased username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRole returns all users with the given role, ordered by username.
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// Delete removes the user; planning entries cascade away in the store.
	Delete(ctx context.Context, id string) error
}
