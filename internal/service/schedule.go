package service

import (
	"context"
	"errors"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleService struct {
	store domain.ScheduleStore
}

func NewScheduleService(s domain.ScheduleStore) *ScheduleService {
	return &ScheduleService{store: s}
}

func (s *ScheduleService) Create(ctx context.Context, tenantID int64, sc *domain.Schedule) error {
	sc.TenantID = tenantID
	if sc.Type == "" {
		sc.Type = domain.ScheduleTask
	}
	if sc.Status == "" {
		sc.Status = domain.ScheduleScheduled
	}
	return s.store.Create(ctx, sc)
}

func (s *ScheduleService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Schedule, error) {
	sc, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *ScheduleService) List(ctx context.Context, tenantID int64) ([]domain.Schedule, error) {
	return s.store.List(ctx, tenantID)
}

func (s *ScheduleService) ListByProject(ctx context.Context, projectID, tenantID int64) ([]domain.Schedule, error) {
	return s.store.ListByProject(ctx, projectID, tenantID)
}

func (s *ScheduleService) ListByEmployee(ctx context.Context, employeeID, tenantID int64) ([]domain.Schedule, error) {
	return s.store.ListByEmployee(ctx, employeeID, tenantID)
}

// ListByDate returns schedules whose start falls within the given
// calendar day, interpreted in UTC.
func (s *ScheduleService) ListByDate(ctx context.Context, tenantID int64, date time.Time) ([]domain.Schedule, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return s.store.ListByRange(ctx, tenantID, day, day.AddDate(0, 0, 1))
}

func (s *ScheduleService) Update(ctx context.Context, id, tenantID int64, sc *domain.Schedule) (*domain.Schedule, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.Title = sc.Title
	existing.Description = sc.Description
	existing.StartAt = sc.StartAt
	existing.EndAt = sc.EndAt
	existing.IsAllDay = sc.IsAllDay
	existing.ProjectID = sc.ProjectID
	existing.EmployeeID = sc.EmployeeID
	existing.EquipmentID = sc.EquipmentID
	existing.Type = sc.Type
	existing.Status = sc.Status
	existing.Location = sc.Location
	existing.Notes = sc.Notes

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrScheduleNotFound
	}
	return err
}
