package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientStore struct {
	db *pgxpool.Pool
}

func NewClientStore(db *pgxpool.Pool) *ClientStore {
	return &ClientStore{db: db}
}

const clientColumns = `id, tenant_id, name, contact_person, email, phone_number,
	address, city, state, zip_code, country, type, notes, is_active,
	created_at, updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.ContactPerson, &c.Email,
		&c.PhoneNumber, &c.Address, &c.City, &c.State, &c.ZipCode, &c.Country,
		&c.Type, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientStore) Create(ctx context.Context, c *domain.Client) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO clients (tenant_id, name, contact_person, email, phone_number,
		     address, city, state, zip_code, country, type, notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		c.TenantID, c.Name, c.ContactPerson, c.Email, c.PhoneNumber,
		c.Address, c.City, c.State, c.ZipCode, c.Country, c.Type, c.Notes, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *ClientStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Client, error) {
	c, err := scanClient(s.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ClientStore) List(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	return s.list(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

func (s *ClientStore) ListActive(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	return s.list(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE tenant_id = $1 AND is_active ORDER BY id`,
		tenantID)
}

func (s *ClientStore) list(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// Update overwrites mutable fields; tenant_id and id never change.
func (s *ClientStore) Update(ctx context.Context, c *domain.Client) error {
	err := s.db.QueryRow(ctx,
		`UPDATE clients
		 SET name = $1, contact_person = $2, email = $3, phone_number = $4,
		     address = $5, city = $6, state = $7, zip_code = $8, country = $9,
		     type = $10, notes = $11, is_active = $12, updated_at = NOW()
		 WHERE id = $13 AND tenant_id = $14
		 RETURNING updated_at`,
		c.Name, c.ContactPerson, c.Email, c.PhoneNumber, c.Address, c.City,
		c.State, c.ZipCode, c.Country, c.Type, c.Notes, c.IsActive,
		c.ID, c.TenantID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ClientStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM clients WHERE id = $1 AND tenant_id = $2`,
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
