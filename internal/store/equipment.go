package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentStore struct {
	db *pgxpool.Pool
}

func NewEquipmentStore(db *pgxpool.Pool) *EquipmentStore {
	return &EquipmentStore{db: db}
}

const equipmentColumns = `id, tenant_id, name, description, serial_number, model,
	manufacturer, purchase_date, purchase_price, current_value, status,
	last_maintenance_date, next_maintenance_date, maintenance_notes,
	is_active, created_at, updated_at`

func scanEquipment(row pgx.Row) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	err := row.Scan(&e.ID, &e.TenantID, &e.Name, &e.Description, &e.SerialNumber,
		&e.Model, &e.Manufacturer, &e.PurchaseDate, &e.PurchasePrice, &e.CurrentValue,
		&e.Status, &e.LastMaintenanceDate, &e.NextMaintenanceDate, &e.MaintenanceNotes,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentStore) Create(ctx context.Context, e *domain.Equipment) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO equipment (tenant_id, name, description, serial_number, model,
		     manufacturer, purchase_date, purchase_price, current_value, status,
		     last_maintenance_date, next_maintenance_date, maintenance_notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id, created_at, updated_at`,
		e.TenantID, e.Name, e.Description, e.SerialNumber, e.Model, e.Manufacturer,
		e.PurchaseDate, e.PurchasePrice, e.CurrentValue, e.Status,
		e.LastMaintenanceDate, e.NextMaintenanceDate, e.MaintenanceNotes, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}
	return nil
}

func (s *EquipmentStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Equipment, error) {
	e, err := scanEquipment(s.db.QueryRow(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = $1 AND tenant_id = $2`,
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

func (s *EquipmentStore) List(ctx context.Context, tenantID int64) ([]domain.Equipment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE tenant_id = $1 ORDER BY id`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

func (s *EquipmentStore) Update(ctx context.Context, e *domain.Equipment) error {
	err := s.db.QueryRow(ctx,
		`UPDATE equipment
		 SET name = $1, description = $2, serial_number = $3, model = $4,
		     manufacturer = $5, purchase_date = $6, purchase_price = $7,
		     current_value = $8, status = $9, last_maintenance_date = $10,
		     next_maintenance_date = $11, maintenance_notes = $12, is_active = $13,
		     updated_at = NOW()
		 WHERE id = $14 AND tenant_id = $15
		 RETURNING updated_at`,
		e.Name, e.Description, e.SerialNumber, e.Model, e.Manufacturer,
		e.PurchaseDate, e.PurchasePrice, e.CurrentValue, e.Status,
		e.LastMaintenanceDate, e.NextMaintenanceDate, e.MaintenanceNotes, e.IsActive,
		e.ID, e.TenantID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}
	return nil
}

func (s *EquipmentStore) Delete(ctx context.Context, id, tenantID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM equipment WHERE id = $1 AND tenant_id = $2`,
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
