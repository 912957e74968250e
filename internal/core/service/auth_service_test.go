package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/planisoins/planning-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	copy.CreatedAt = time.Now()
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// seedUser stores a user with password "Secret1!" already hashed.
func seedUser(r *stubUserRepo, id, username, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret1!"), bcrypt.MinCost)
	r.users[id] = &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "alice", domain.RoleNurse)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "alice", "Secret1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "u1" {
		t.Fatalf("expected sub u1, got %v", claims["sub"])
	}
	if claims["role"] != domain.RoleNurse {
		t.Fatalf("expected role %s, got %v", domain.RoleNurse, claims["role"])
	}
}

func TestAuthService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "a1", "admin", domain.RoleAdmin)
	svc := NewAuthService(repo, "secret", time.Hour)

	_, user, err := svc.Login(context.Background(), "  Admin ", "Secret1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "a1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "alice", domain.RoleNurse)
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "alice", "wrongpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	// Unknown user must look exactly like a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "Secret1!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "alice", domain.RoleNurse)
	svc := NewAuthService(repo, "secret", time.Hour)

	if err := svc.ChangePassword(context.Background(), "u1", "Secret1!", "NewPass9#"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "NewPass9#"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "Secret1!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "alice", domain.RoleNurse)
	svc := NewAuthService(repo, "secret", time.Hour)

	if err := svc.ChangePassword(context.Background(), "u1", "nope", "NewPass9#"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_WeakNew(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "alice", domain.RoleNurse)
	svc := NewAuthService(repo, "secret", time.Hour)

	if err := svc.ChangePassword(context.Background(), "u1", "Secret1!", "weak"); err != domain.ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	// The stored hash must be untouched.
	if _, _, err := svc.Login(context.Background(), "alice", "Secret1!"); err != nil {
		t.Fatalf("expected original password to keep working: %v", err)
	}
}
