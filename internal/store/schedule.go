package store

import (
	"context"
	"errors"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleStore struct {
	db *pgxpool.Pool
}

func NewScheduleStore(db *pgxpool.Pool) *ScheduleStore {
	return &ScheduleStore{db: db}
}

const scheduleColumns = `id, tenant_id, title, description, start_at, end_at,
	is_all_day, project_id, employee_id, equipment_id, type, status,
	location, notes, created_at, updated_at`

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	sc := &domain.Schedule{}
	err := row.Scan(&sc.ID, &sc.TenantID, &sc.Title, &sc.Description,
		&sc.StartAt, &sc.EndAt, &sc.IsAllDay, &sc.ProjectID, &sc.EmployeeID,
		&sc.EquipmentID, &sc.Type, &sc.Status, &sc.Location, &sc.Notes,
		&sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *ScheduleStore) Create(ctx context.Context, sc *domain.Schedule) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO schedules (tenant_id, title, description, start_at, end_at,
		     is_all_day, project_id, employee_id, equipment_id, type, status,
		     location, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		sc.TenantID, sc.Title, sc.Description, sc.StartAt, sc.EndAt, sc.IsAllDay,
		sc.ProjectID, sc.EmployeeID, sc.EquipmentID, sc.Type, sc.Status,
		sc.Location, sc.Notes,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *ScheduleStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Schedule, error) {
	sc, err := scanSchedule(s.db.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *ScheduleStore) List(ctx context.Context, tenantID int64) ([]domain.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE tenant_id = $1 ORDER BY start_at`,
		tenantID)
}

func (s *ScheduleStore) ListByProject(ctx context.Context, projectID, tenantID int64) ([]domain.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE tenant_id = $1 AND project_id = $2
		 ORDER BY start_at`,
		tenantID, projectID)
}

func (s *ScheduleStore) ListByEmployee(ctx context.Context, employeeID, tenantID int64) ([]domain.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE tenant_id = $1 AND employee_id = $2
		 ORDER BY start_at`,
		tenantID, employeeID)
}

// ListByRange returns schedules whose start falls in [from, to).
func (s *ScheduleStore) ListByRange(ctx context.Context, tenantID int64, from, to time.Time) ([]domain.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE tenant_id = $1 AND start_at >= $2 AND start_at < $3
		 ORDER BY start_at`,
		tenantID, from, to)
}

func (s *ScheduleStore) list(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *sc)
	}
	return schedules, rows.Err()
}

func (s *ScheduleStore) Update(ctx context.Context, sc *domain.Schedule) error {
	err := s.db.QueryRow(ctx,
		`UPDATE schedules
		 SET title = $1, description = $2, start_at = $3, end_at = $4,
		     is_all_day = $5, project_id = $6, employee_id = $7, equipment_id = $8,
		     type = $9, status = $10, location = $11, notes = $12, updated_at = NOW()
		 WHERE id = $13 AND tenant_id = $14
		 RETURNING updated_at`,
		sc.Title, sc.Description, sc.StartAt, sc.EndAt, sc.IsAllDay,
		sc.ProjectID, sc.EmployeeID, sc.EquipmentID, sc.Type, sc.Status,
		sc.Location, sc.Notes, sc.ID, sc.TenantID,
	).Scan(&sc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *ScheduleStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM schedules WHERE id = $1 AND tenant_id = $2`,
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
