package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Store interfaces are implemented by the pgx stores in internal/store
// and by mocks in service tests. Every method touching a tenant-owned
// table takes the resolved tenant id as an explicit parameter; there is
// deliberately no way to query those tables without one.

type TenantStore interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id int64) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id, tenantID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, tenantID int64) ([]User, error)
	ListActive(ctx context.Context, tenantID int64) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type ClientStore interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id, tenantID int64) (*Client, error)
	List(ctx context.Context, tenantID int64) ([]Client, error)
	ListActive(ctx context.Context, tenantID int64) ([]Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type ProjectStore interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id, tenantID int64) (*Project, error)
	List(ctx context.Context, tenantID int64) ([]Project, error)
	ListActive(ctx context.Context, tenantID int64) ([]Project, error)
	ListByClient(ctx context.Context, clientID, tenantID int64) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type EmployeeStore interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id, tenantID int64) (*Employee, error)
	List(ctx context.Context, tenantID int64) ([]Employee, error)
	ListActive(ctx context.Context, tenantID int64) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type EquipmentStore interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id, tenantID int64) (*Equipment, error)
	List(ctx context.Context, tenantID int64) ([]Equipment, error)
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type InvoiceStore interface {
	// Create and Update persist the invoice and its full item set in a
	// single transaction so readers never see items out of step with
	// the stored aggregates.
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id, tenantID int64) (*Invoice, error)
	List(ctx context.Context, tenantID int64) ([]Invoice, error)
	ListByClient(ctx context.Context, clientID, tenantID int64) ([]Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id, tenantID int64) error
	UpdatePayment(ctx context.Context, id, tenantID int64, amountPaid decimal.Decimal, status InvoiceStatus) (*Invoice, error)
}

type ScheduleStore interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id, tenantID int64) (*Schedule, error)
	List(ctx context.Context, tenantID int64) ([]Schedule, error)
	ListByProject(ctx context.Context, projectID, tenantID int64) ([]Schedule, error)
	ListByEmployee(ctx context.Context, employeeID, tenantID int64) ([]Schedule, error)
	ListByRange(ctx context.Context, tenantID int64, from, to time.Time) ([]Schedule, error)
	Update(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type DocumentStore interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id, tenantID int64) (*Document, error)
	List(ctx context.Context, tenantID int64) ([]Document, error)
	ListByProject(ctx context.Context, projectID, tenantID int64) ([]Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id, tenantID int64) error
}

type ReportStore interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id, tenantID int64) (*Report, error)
	List(ctx context.Context, tenantID int64) ([]Report, error)
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id, tenantID int64) error
}
