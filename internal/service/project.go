package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectClient   = errors.New("referenced client does not exist in this tenant")
)

type ProjectService struct {
	store   domain.ProjectStore
	clients domain.ClientStore
}

func NewProjectService(s domain.ProjectStore, clients domain.ClientStore) *ProjectService {
	return &ProjectService{store: s, clients: clients}
}

// Create verifies the referenced client belongs to the same tenant
// before persisting; a client id from another tenant reads as absent.
func (s *ProjectService) Create(ctx context.Context, tenantID int64, p *domain.Project) error {
	if _, err := s.clients.GetByID(ctx, p.ClientID, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectClient
		}
		return err
	}

	p.TenantID = tenantID
	if p.Status == "" {
		p.Status = domain.ProjectPlanning
	}
	return s.store.Create(ctx, p)
}

func (s *ProjectService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	return s.store.List(ctx, tenantID)
}

func (s *ProjectService) ListActive(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	return s.store.ListActive(ctx, tenantID)
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Project, error) {
	return s.store.ListByClient(ctx, clientID, tenantID)
}

func (s *ProjectService) Update(ctx context.Context, id, tenantID int64, p *domain.Project) (*domain.Project, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if p.ClientID != existing.ClientID {
		if _, err := s.clients.GetByID(ctx, p.ClientID, tenantID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrProjectClient
			}
			return nil, err
		}
	}

	existing.Name = p.Name
	existing.Description = p.Description
	existing.ClientID = p.ClientID
	existing.Address = p.Address
	existing.StartDate = p.StartDate
	existing.EndDate = p.EndDate
	existing.ActualEndDate = p.ActualEndDate
	existing.Budget = p.Budget
	existing.ActualCost = p.ActualCost
	existing.Status = p.Status

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}
