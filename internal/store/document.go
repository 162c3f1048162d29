package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DocumentStore struct {
	db *pgxpool.Pool
}

func NewDocumentStore(db *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, tenant_id, file_name, original_file_name, file_path,
	content_type, file_size, project_id, category, description, uploaded_by,
	is_active, created_at, updated_at`

func scanDocument(row pgx.Row) (*domain.Document, error) {
	d := &domain.Document{}
	err := row.Scan(&d.ID, &d.TenantID, &d.FileName, &d.OriginalFileName,
		&d.FilePath, &d.ContentType, &d.FileSize, &d.ProjectID, &d.Category,
		&d.Description, &d.UploadedBy, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DocumentStore) Create(ctx context.Context, d *domain.Document) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO documents (tenant_id, file_name, original_file_name, file_path,
		     content_type, file_size, project_id, category, description, uploaded_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		d.TenantID, d.FileName, d.OriginalFileName, d.FilePath, d.ContentType,
		d.FileSize, d.ProjectID, d.Category, d.Description, d.UploadedBy, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *DocumentStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Document, error) {
	d, err := scanDocument(s.db.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DocumentStore) List(ctx context.Context, tenantID int64) ([]domain.Document, error) {
	return s.list(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

func (s *DocumentStore) ListByProject(ctx context.Context, projectID, tenantID int64) ([]domain.Document, error) {
	return s.list(ctx,
		`SELECT `+documentColumns+` FROM documents
		 WHERE tenant_id = $1 AND project_id = $2
		 ORDER BY id`,
		tenantID, projectID)
}

func (s *DocumentStore) list(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

func (s *DocumentStore) Update(ctx context.Context, d *domain.Document) error {
	err := s.db.QueryRow(ctx,
		`UPDATE documents
		 SET file_name = $1, original_file_name = $2, file_path = $3,
		     content_type = $4, file_size = $5, project_id = $6, category = $7,
		     description = $8, uploaded_by = $9, is_active = $10, updated_at = NOW()
		 WHERE id = $11 AND tenant_id = $12
		 RETURNING updated_at`,
		d.FileName, d.OriginalFileName, d.FilePath, d.ContentType, d.FileSize,
		d.ProjectID, d.Category, d.Description, d.UploadedBy, d.IsActive,
		d.ID, d.TenantID,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
