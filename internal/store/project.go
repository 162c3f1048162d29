package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectStore struct {
	db *pgxpool.Pool
}

func NewProjectStore(db *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, tenant_id, name, description, client_id, address,
	start_date, end_date, actual_end_date, budget, actual_cost, status,
	created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.ClientID,
		&p.Address, &p.StartDate, &p.EndDate, &p.ActualEndDate,
		&p.Budget, &p.ActualCost, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) Create(ctx context.Context, p *domain.Project) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO projects (tenant_id, name, description, client_id, address,
		     start_date, end_date, actual_end_date, budget, actual_cost, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		p.TenantID, p.Name, p.Description, p.ClientID, p.Address,
		p.StartDate, p.EndDate, p.ActualEndDate, p.Budget, p.ActualCost, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *ProjectStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Project, error) {
	p, err := scanProject(s.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) List(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	return s.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

// ListActive returns projects that are neither completed nor cancelled.
func (s *ProjectStore) ListActive(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	return s.list(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE tenant_id = $1 AND status NOT IN ('completed', 'cancelled')
		 ORDER BY id`,
		tenantID)
}

func (s *ProjectStore) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Project, error) {
	return s.list(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE tenant_id = $1 AND client_id = $2
		 ORDER BY id`,
		tenantID, clientID)
}

func (s *ProjectStore) list(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *ProjectStore) Update(ctx context.Context, p *domain.Project) error {
	err := s.db.QueryRow(ctx,
		`UPDATE projects
		 SET name = $1, description = $2, client_id = $3, address = $4,
		     start_date = $5, end_date = $6, actual_end_date = $7,
		     budget = $8, actual_cost = $9, status = $10, updated_at = NOW()
		 WHERE id = $11 AND tenant_id = $12
		 RETURNING updated_at`,
		p.Name, p.Description, p.ClientID, p.Address, p.StartDate, p.EndDate,
		p.ActualEndDate, p.Budget, p.ActualCost, p.Status, p.ID, p.TenantID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return constraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
