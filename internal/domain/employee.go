package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              int64           `json:"id"`
	TenantID        int64           `json:"tenant_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	Address         string          `json:"address,omitempty"`
	Position        string          `json:"position"`
	Department      string          `json:"department,omitempty"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	HireDate        time.Time       `json:"hire_date"`
	TerminationDate *time.Time      `json:"termination_date,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
