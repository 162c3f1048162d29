package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportStore struct {
	db *pgxpool.Pool
}

func NewReportStore(db *pgxpool.Pool) *ReportStore {
	return &ReportStore{db: db}
}

const reportColumns = `id, tenant_id, title, description, type, project_id,
	start_date, end_date, data, generated_by, is_active, created_at, updated_at`

func scanReport(row pgx.Row) (*domain.Report, error) {
	r := &domain.Report{}
	err := row.Scan(&r.ID, &r.TenantID, &r.Title, &r.Description, &r.Type,
		&r.ProjectID, &r.StartDate, &r.EndDate, &r.Data, &r.GeneratedBy,
		&r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReportStore) Create(ctx context.Context, r *domain.Report) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO reports (tenant_id, title, description, type, project_id,
		     start_date, end_date, data, generated_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		r.TenantID, r.Title, r.Description, r.Type, r.ProjectID,
		r.StartDate, r.EndDate, r.Data, r.GeneratedBy, r.IsActive,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *ReportStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Report, error) {
	r, err := scanReport(s.db.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ReportStore) List(ctx context.Context, tenantID int64) ([]domain.Report, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE tenant_id = $1 ORDER BY id`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func (s *ReportStore) Update(ctx context.Context, r *domain.Report) error {
	err := s.db.QueryRow(ctx,
		`UPDATE reports
		 SET title = $1, description = $2, type = $3, project_id = $4,
		     start_date = $5, end_date = $6, data = $7, generated_by = $8,
		     is_active = $9, updated_at = NOW()
		 WHERE id = $10 AND tenant_id = $11
		 RETURNING updated_at`,
		r.Title, r.Description, r.Type, r.ProjectID, r.StartDate, r.EndDate,
		r.Data, r.GeneratedBy, r.IsActive, r.ID, r.TenantID,
	).Scan(&r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *ReportStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM reports WHERE id = $1 AND tenant_id = $2`,
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
