package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/auth"
	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("a user with this email already exists")
)

type UserService struct {
	store domain.UserStore
}

func NewUserService(s domain.UserStore) *UserService {
	return &UserService{store: s}
}

// Create hashes the plaintext password and stamps the tenant. The hash
// never leaves the store layer in responses (PasswordHash is json:"-").
func (s *UserService) Create(ctx context.Context, tenantID int64, u *domain.User, password string) error {
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

	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrUserConflict
		}
		return err
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id, tenantID int64) (*domain.User, error) {
	u, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, tenantID int64) ([]domain.User, error) {
	return s.store.List(ctx, tenantID)
}

func (s *UserService) ListActive(ctx context.Context, tenantID int64) ([]domain.User, error) {
	return s.store.ListActive(ctx, tenantID)
}

// Update changes profile fields only; passwords are not updatable here.
func (s *UserService) Update(ctx context.Context, id, tenantID int64, u *domain.User) (*domain.User, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.Email = u.Email
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	if u.Role != "" {
		existing.Role = u.Role
	}
	existing.IsActive = u.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, store.ErrConflict):
			return nil, ErrUserConflict
		}
		return nil, err
	}
	return existing, nil
}

func (s *UserService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
