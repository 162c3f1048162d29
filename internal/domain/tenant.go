package domain

import "time"

// Tenant is the unit of row-level data partitioning. Every other entity
// carries a tenant id and is only ever visible to requests resolved to
// the same tenant.
type Tenant struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
