package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientInUse    = errors.New("client is referenced by projects or invoices")
)

type ClientService struct {
	store domain.ClientStore
}

func NewClientService(s domain.ClientStore) *ClientService {
	return &ClientService{store: s}
}

// Create stamps the resolved tenant onto the row, overriding whatever
// tenant id the payload may have carried.
func (s *ClientService) Create(ctx context.Context, tenantID int64, c *domain.Client) error {
	c.TenantID = tenantID
	c.IsActive = true
	if c.Type == "" {
		c.Type = domain.ClientIndividual
	}
	return s.store.Create(ctx, c)
}

func (s *ClientService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Client, error) {
	c, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ClientService) List(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	return s.store.List(ctx, tenantID)
}

func (s *ClientService) ListActive(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	return s.store.ListActive(ctx, tenantID)
}

func (s *ClientService) Update(ctx context.Context, id, tenantID int64, c *domain.Client) (*domain.Client, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.Name = c.Name
	existing.ContactPerson = c.ContactPerson
	existing.Email = c.Email
	existing.PhoneNumber = c.PhoneNumber
	existing.Address = c.Address
	existing.City = c.City
	existing.State = c.State
	existing.ZipCode = c.ZipCode
	existing.Country = c.Country
	existing.Type = c.Type
	existing.Notes = c.Notes
	existing.IsActive = c.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *ClientService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrClientNotFound
	case errors.Is(err, store.ErrRestricted):
		return ErrClientInUse
	}
	return err
}
