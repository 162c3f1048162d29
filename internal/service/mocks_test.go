package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
)

// In-memory stores for service tests. They honor the same tenant
// scoping contract as the pgx stores: lookups match both id and
// tenant id or return store.ErrNotFound.

type mockTenantStore struct {
	tenants    map[int64]*domain.Tenant
	dependents map[int64]bool
	nextID     int64
}

func newMockTenantStore() *mockTenantStore {
	return &mockTenantStore{tenants: make(map[int64]*domain.Tenant), dependents: make(map[int64]bool)}
}

func (m *mockTenantStore) Create(ctx context.Context, t *domain.Tenant) error {
	m.nextID++
	t.ID = m.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	m.tenants[t.ID] = &cp
	return nil
}

func (m *mockTenantStore) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTenantStore) List(ctx context.Context) ([]domain.Tenant, error) {
	var out []domain.Tenant
	for _, t := range m.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTenantStore) Update(ctx context.Context, t *domain.Tenant) error {
	if _, ok := m.tenants[t.ID]; !ok {
		return store.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	m.tenants[t.ID] = &cp
	return nil
}

func (m *mockTenantStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.tenants[id]; !ok {
		return store.ErrNotFound
	}
	if m.dependents[id] {
		return store.ErrRestricted
	}
	delete(m.tenants, id)
	return nil
}

type mockUserStore struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[int64]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) List(ctx context.Context, tenantID int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserStore) ListActive(ctx context.Context, tenantID int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.TenantID == tenantID && u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserStore) Update(ctx context.Context, u *domain.User) error {
	existing, ok := m.users[u.ID]
	if !ok || existing.TenantID != u.TenantID {
		return store.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id, tenantID int64) error {
	u, ok := m.users[id]
	if !ok || u.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockClientStore struct {
	clients map[int64]*domain.Client
	inUse   map[int64]bool
	nextID  int64
}

func newMockClientStore() *mockClientStore {
	return &mockClientStore{clients: make(map[int64]*domain.Client), inUse: make(map[int64]bool)}
}

func (m *mockClientStore) Create(ctx context.Context, c *domain.Client) error {
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *mockClientStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Client, error) {
	c, ok := m.clients[id]
	if !ok || c.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockClientStore) List(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range m.clients {
		if c.TenantID == tenantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockClientStore) ListActive(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range m.clients {
		if c.TenantID == tenantID && c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockClientStore) Update(ctx context.Context, c *domain.Client) error {
	existing, ok := m.clients[c.ID]
	if !ok || existing.TenantID != c.TenantID {
		return store.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *mockClientStore) Delete(ctx context.Context, id, tenantID int64) error {
	c, ok := m.clients[id]
	if !ok || c.TenantID != tenantID {
		return store.ErrNotFound
	}
	if m.inUse[id] {
		return store.ErrRestricted
	}
	delete(m.clients, id)
	return nil
}

type mockProjectStore struct {
	projects map[int64]*domain.Project
	nextID   int64
}

func newMockProjectStore() *mockProjectStore {
	return &mockProjectStore{projects: make(map[int64]*domain.Project)}
}

func (m *mockProjectStore) Create(ctx context.Context, p *domain.Project) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *mockProjectStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Project, error) {
	p, ok := m.projects[id]
	if !ok || p.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProjectStore) List(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.projects {
		if p.TenantID == tenantID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectStore) ListActive(ctx context.Context, tenantID int64) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.projects {
		if p.TenantID == tenantID && p.Status != domain.ProjectCompleted && p.Status != domain.ProjectCancelled {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectStore) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.projects {
		if p.TenantID == tenantID && p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectStore) Update(ctx context.Context, p *domain.Project) error {
	existing, ok := m.projects[p.ID]
	if !ok || existing.TenantID != p.TenantID {
		return store.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id, tenantID int64) error {
	p, ok := m.projects[id]
	if !ok || p.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

type mockInvoiceStore struct {
	invoices map[int64]*domain.Invoice
	nextID   int64
}

func newMockInvoiceStore() *mockInvoiceStore {
	return &mockInvoiceStore{invoices: make(map[int64]*domain.Invoice)}
}

func (m *mockInvoiceStore) Create(ctx context.Context, inv *domain.Invoice) error {
	m.nextID++
	inv.ID = m.nextID
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt
	cp := *inv
	cp.Items = append([]domain.InvoiceItem(nil), inv.Items...)
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *mockInvoiceStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *inv
	cp.Items = append([]domain.InvoiceItem(nil), inv.Items...)
	return &cp, nil
}

func (m *mockInvoiceStore) List(ctx context.Context, tenantID int64) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range m.invoices {
		if inv.TenantID == tenantID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInvoiceStore) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range m.invoices {
		if inv.TenantID == tenantID && inv.ClientID == clientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInvoiceStore) Update(ctx context.Context, inv *domain.Invoice) error {
	existing, ok := m.invoices[inv.ID]
	if !ok || existing.TenantID != inv.TenantID {
		return store.ErrNotFound
	}
	inv.UpdatedAt = time.Now()
	cp := *inv
	cp.Items = append([]domain.InvoiceItem(nil), inv.Items...)
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *mockInvoiceStore) Delete(ctx context.Context, id, tenantID int64) error {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}

func (m *mockInvoiceStore) UpdatePayment(ctx context.Context, id, tenantID int64, amountPaid decimal.Decimal, status domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	inv.AmountPaid = amountPaid
	inv.Status = status
	inv.UpdatedAt = time.Now()
	cp := *inv
	cp.Items = append([]domain.InvoiceItem(nil), inv.Items...)
	return &cp, nil
}

type mockScheduleStore struct {
	schedules map[int64]*domain.Schedule
	nextID    int64
}

func newMockScheduleStore() *mockScheduleStore {
	return &mockScheduleStore{schedules: make(map[int64]*domain.Schedule)}
}

func (m *mockScheduleStore) Create(ctx context.Context, s *domain.Schedule) error {
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}

func (m *mockScheduleStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Schedule, error) {
	s, ok := m.schedules[id]
	if !ok || s.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockScheduleStore) List(ctx context.Context, tenantID int64) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range m.schedules {
		if s.TenantID == tenantID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockScheduleStore) ListByProject(ctx context.Context, projectID, tenantID int64) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range m.schedules {
		if s.TenantID == tenantID && s.ProjectID != nil && *s.ProjectID == projectID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockScheduleStore) ListByEmployee(ctx context.Context, employeeID, tenantID int64) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range m.schedules {
		if s.TenantID == tenantID && s.EmployeeID != nil && *s.EmployeeID == employeeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockScheduleStore) ListByRange(ctx context.Context, tenantID int64, from, to time.Time) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range m.schedules {
		if s.TenantID == tenantID && !s.StartAt.Before(from) && s.StartAt.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockScheduleStore) Update(ctx context.Context, s *domain.Schedule) error {
	existing, ok := m.schedules[s.ID]
	if !ok || existing.TenantID != s.TenantID {
		return store.ErrNotFound
	}
	s.UpdatedAt = time.Now()
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}

func (m *mockScheduleStore) Delete(ctx context.Context, id, tenantID int64) error {
	s, ok := m.schedules[id]
	if !ok || s.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.schedules, id)
	return nil
}
