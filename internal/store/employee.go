package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeStore struct {
	db *pgxpool.Pool
}

func NewEmployeeStore(db *pgxpool.Pool) *EmployeeStore {
	return &EmployeeStore{db: db}
}

const employeeColumns = `id, tenant_id, first_name, last_name, email, phone_number,
	address, position, department, hourly_rate, hire_date, termination_date,
	is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := row.Scan(&e.ID, &e.TenantID, &e.FirstName, &e.LastName, &e.Email,
		&e.PhoneNumber, &e.Address, &e.Position, &e.Department, &e.HourlyRate,
		&e.HireDate, &e.TerminationDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeStore) Create(ctx context.Context, e *domain.Employee) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO employees (tenant_id, first_name, last_name, email, phone_number,
		     address, position, department, hourly_rate, hire_date, termination_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		e.TenantID, e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.Address,
		e.Position, e.Department, e.HourlyRate, e.HireDate, e.TerminationDate, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *EmployeeStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Employee, error) {
	e, err := scanEmployee(s.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EmployeeStore) List(ctx context.Context, tenantID int64) ([]domain.Employee, error) {
	return s.list(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

func (s *EmployeeStore) ListActive(ctx context.Context, tenantID int64) ([]domain.Employee, error) {
	return s.list(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE tenant_id = $1 AND is_active ORDER BY id`,
		tenantID)
}

func (s *EmployeeStore) list(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (s *EmployeeStore) Update(ctx context.Context, e *domain.Employee) error {
	err := s.db.QueryRow(ctx,
		`UPDATE employees
		 SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
		     address = $5, position = $6, department = $7, hourly_rate = $8,
		     hire_date = $9, termination_date = $10, is_active = $11, updated_at = NOW()
		 WHERE id = $12 AND tenant_id = $13
		 RETURNING updated_at`,
		e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.Address, e.Position,
		e.Department, e.HourlyRate, e.HireDate, e.TerminationDate, e.IsActive,
		e.ID, e.TenantID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *EmployeeStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM employees WHERE id = $1 AND tenant_id = $2`,
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
