package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeService struct {
	store domain.EmployeeStore
}

func NewEmployeeService(s domain.EmployeeStore) *EmployeeService {
	return &EmployeeService{store: s}
}

func (s *EmployeeService) Create(ctx context.Context, tenantID int64, e *domain.Employee) error {
	e.TenantID = tenantID
	e.IsActive = true
	return s.store.Create(ctx, e)
}

func (s *EmployeeService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Employee, error) {
	e, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context, tenantID int64) ([]domain.Employee, error) {
	return s.store.List(ctx, tenantID)
}

func (s *EmployeeService) ListActive(ctx context.Context, tenantID int64) ([]domain.Employee, error) {
	return s.store.ListActive(ctx, tenantID)
}

func (s *EmployeeService) Update(ctx context.Context, id, tenantID int64, e *domain.Employee) (*domain.Employee, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.FirstName = e.FirstName
	existing.LastName = e.LastName
	existing.Email = e.Email
	existing.PhoneNumber = e.PhoneNumber
	existing.Address = e.Address
	existing.Position = e.Position
	existing.Department = e.Department
	existing.HourlyRate = e.HourlyRate
	existing.HireDate = e.HireDate
	existing.TerminationDate = e.TerminationDate
	existing.IsActive = e.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmployeeNotFound
	}
	return err
}
