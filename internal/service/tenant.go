package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantHasDependents = errors.New("tenant still owns records and cannot be deleted")
)

// TenantService manages tenants themselves. Callers are expected to
// have passed the admin-role gate; no tenant scoping applies here.
type TenantService struct {
	store domain.TenantStore
}

func NewTenantService(s domain.TenantStore) *TenantService {
	return &TenantService{store: s}
}

func (s *TenantService) Create(ctx context.Context, t *domain.Tenant) error {
	t.IsActive = true
	return s.store.Create(ctx, t)
}

func (s *TenantService) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.store.List(ctx)
}

func (s *TenantService) Update(ctx context.Context, id int64, t *domain.Tenant) (*domain.Tenant, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = t.Name
	existing.Description = t.Description
	existing.IsActive = t.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *TenantService) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrTenantNotFound
	case errors.Is(err, store.ErrRestricted):
		return ErrTenantHasDependents
	}
	return err
}
