package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, tenant_id, email, password_hash, first_name, last_name,
	role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (tenant_id, email, password_hash, first_name, last_name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.TenantID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail is the login lookup. Emails are globally unique, so this
// is the single place a user row is read before a tenant is known.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserStore) List(ctx context.Context, tenantID int64) ([]domain.User, error) {
	return s.list(ctx,
		`SELECT `+userColumns+` FROM users WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

func (s *UserStore) ListActive(ctx context.Context, tenantID int64) ([]domain.User, error) {
	return s.list(ctx,
		`SELECT `+userColumns+` FROM users WHERE tenant_id = $1 AND is_active ORDER BY id`,
		tenantID)
}

func (s *UserStore) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *UserStore) Update(ctx context.Context, u *domain.User) error {
	err := s.db.QueryRow(ctx,
		`UPDATE users
		 SET email = $1, first_name = $2, last_name = $3, role = $4,
		     is_active = $5, updated_at = NOW()
		 WHERE id = $6 AND tenant_id = $7
		 RETURNING updated_at`,
		u.Email, u.FirstName, u.LastName, u.Role, u.IsActive, u.ID, u.TenantID,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND tenant_id = $2`,
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
