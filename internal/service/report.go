package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrReportNotFound = errors.New("report not found")

type ReportService struct {
	store domain.ReportStore
}

func NewReportService(s domain.ReportStore) *ReportService {
	return &ReportService{store: s}
}

func (s *ReportService) Create(ctx context.Context, tenantID int64, r *domain.Report) error {
	r.TenantID = tenantID
	r.IsActive = true
	if r.Type == "" {
		r.Type = domain.ReportProjectSummary
	}
	return s.store.Create(ctx, r)
}

func (s *ReportService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Report, error) {
	r, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ReportService) List(ctx context.Context, tenantID int64) ([]domain.Report, error) {
	return s.store.List(ctx, tenantID)
}

func (s *ReportService) Update(ctx context.Context, id, tenantID int64, r *domain.Report) (*domain.Report, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.Title = r.Title
	existing.Description = r.Description
	existing.Type = r.Type
	existing.ProjectID = r.ProjectID
	existing.StartDate = r.StartDate
	existing.EndDate = r.EndDate
	existing.Data = r.Data
	existing.GeneratedBy = r.GeneratedBy
	existing.IsActive = r.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *ReportService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrReportNotFound
	}
	return err
}
