package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/ports"
)

// UserService implements the admin roster management operations.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateNurse registers a new nurse account. Usernames are lowercased so
// later lookups stay case-insensitive.
func (s *UserService) CreateNurse(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleNurse,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("nurse account created")
	return created, nil
}

// ListStaff returns every nurse account, ordered by username. With only two
// roles, "non-admin" and "nurse" are the same set.
func (s *UserService) ListStaff(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleNurse)
}

// DeleteUser removes an account. The store cascades the user's planning
// entries away.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
