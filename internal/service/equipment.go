package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type EquipmentService struct {
	store domain.EquipmentStore
}

func NewEquipmentService(s domain.EquipmentStore) *EquipmentService {
	return &EquipmentService{store: s}
}

func (s *EquipmentService) Create(ctx context.Context, tenantID int64, e *domain.Equipment) error {
	e.TenantID = tenantID
	e.IsActive = true
	if e.Status == "" {
		e.Status = domain.EquipmentAvailable
	}
	return s.store.Create(ctx, e)
}

func (s *EquipmentService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Equipment, error) {
	e, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EquipmentService) List(ctx context.Context, tenantID int64) ([]domain.Equipment, error) {
	return s.store.List(ctx, tenantID)
}

func (s *EquipmentService) Update(ctx context.Context, id, tenantID int64, e *domain.Equipment) (*domain.Equipment, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.Name = e.Name
	existing.Description = e.Description
	existing.SerialNumber = e.SerialNumber
	existing.Model = e.Model
	existing.Manufacturer = e.Manufacturer
	existing.PurchaseDate = e.PurchaseDate
	existing.PurchasePrice = e.PurchasePrice
	existing.CurrentValue = e.CurrentValue
	existing.Status = e.Status
	existing.LastMaintenanceDate = e.LastMaintenanceDate
	existing.NextMaintenanceDate = e.NextMaintenanceDate
	existing.MaintenanceNotes = e.MaintenanceNotes
	existing.IsActive = e.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEquipmentNotFound
	}
	return err
}
