package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentStatus string

const (
	EquipmentAvailable    EquipmentStatus = "available"
	EquipmentInUse        EquipmentStatus = "in_use"
	EquipmentMaintenance  EquipmentStatus = "maintenance"
	EquipmentOutOfService EquipmentStatus = "out_of_service"
	EquipmentRetired      EquipmentStatus = "retired"
)

type Equipment struct {
	ID                  int64           `json:"id"`
	TenantID            int64           `json:"tenant_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	SerialNumber        string          `json:"serial_number"`
	Model               string          `json:"model,omitempty"`
	Manufacturer        string          `json:"manufacturer,omitempty"`
	PurchaseDate        *time.Time      `json:"purchase_date,omitempty"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	CurrentValue        decimal.Decimal `json:"current_value"`
	Status              EquipmentStatus `json:"status"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
	MaintenanceNotes    string          `json:"maintenance_notes,omitempty"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
