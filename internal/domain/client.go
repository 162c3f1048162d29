package domain

import "time"

type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientBusiness   ClientType = "business"
	ClientGovernment ClientType = "government"
	ClientNonProfit  ClientType = "nonprofit"
)

type Client struct {
	ID            int64      `json:"id"`
	TenantID      int64      `json:"tenant_id"`
	Name          string     `json:"name"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	ZipCode       string     `json:"zip_code,omitempty"`
	Country       string     `json:"country,omitempty"`
	Type          ClientType `json:"type"`
	Notes         string     `json:"notes,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
