package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type Project struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenant_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	ClientID      int64           `json:"client_id"`
	Address       string          `json:"address,omitempty"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	ActualEndDate *time.Time      `json:"actual_end_date,omitempty"`
	Budget        decimal.Decimal `json:"budget"`
	ActualCost    decimal.Decimal `json:"actual_cost"`
	Status        ProjectStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
