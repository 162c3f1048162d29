package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/auth"
	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles login and registration. Login is the only path
// that reads a user row before a tenant is resolved; the issued token
// then carries the user's tenant id as a claim.
type AuthService struct {
	users   domain.UserStore
	tenants domain.TenantStore
	issuer  *auth.TokenIssuer
}

func NewAuthService(users domain.UserStore, tenants domain.TenantStore, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tenants: tenants, issuer: issuer}
}

// Login verifies the password and issues an access token. Unknown
// email, wrong password and retired accounts are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !u.IsActive || !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Register creates a member account under an existing tenant.
func (s *AuthService) Register(ctx context.Context, tenantID int64, u *domain.User, password string) error {
	if _, err := s.tenants.GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTenantNotFound
		}
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	u.TenantID = tenantID
	u.PasswordHash = hash
	u.IsActive = true
	if u.Role == "" {
		u.Role = domain.RoleMember
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrUserConflict
		}
		return err
	}
	return nil
}
