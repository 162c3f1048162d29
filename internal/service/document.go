package service

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService struct {
	store domain.DocumentStore
}

func NewDocumentService(s domain.DocumentStore) *DocumentService {
	return &DocumentService{store: s}
}

func (s *DocumentService) Create(ctx context.Context, tenantID int64, d *domain.Document) error {
	d.TenantID = tenantID
	d.IsActive = true
	if d.Category == "" {
		d.Category = domain.DocGeneral
	}
	return s.store.Create(ctx, d)
}

func (s *DocumentService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Document, error) {
	d, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DocumentService) List(ctx context.Context, tenantID int64) ([]domain.Document, error) {
	return s.store.List(ctx, tenantID)
}

func (s *DocumentService) ListByProject(ctx context.Context, projectID, tenantID int64) ([]domain.Document, error) {
	return s.store.ListByProject(ctx, projectID, tenantID)
}

func (s *DocumentService) Update(ctx context.Context, id, tenantID int64, d *domain.Document) (*domain.Document, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	existing.FileName = d.FileName
	existing.OriginalFileName = d.OriginalFileName
	existing.FilePath = d.FilePath
	existing.ContentType = d.ContentType
	existing.FileSize = d.FileSize
	existing.ProjectID = d.ProjectID
	existing.Category = d.Category
	existing.Description = d.Description
	existing.UploadedBy = d.UploadedBy
	existing.IsActive = d.IsActive

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *DocumentService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrDocumentNotFound
	}
	return err
}
