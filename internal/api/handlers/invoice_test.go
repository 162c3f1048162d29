package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/api/middleware"
	"github.com/buildrite/buildrite/internal/api/respond"
	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
	"github.com/buildrite/buildrite/internal/store"
)

type stubInvoiceStore struct {
	invoices map[int64]*domain.Invoice
	nextID   int64
}

func newStubInvoiceStore() *stubInvoiceStore {
	return &stubInvoiceStore{invoices: make(map[int64]*domain.Invoice)}
}

func (m *stubInvoiceStore) Create(ctx context.Context, inv *domain.Invoice) error {
	m.nextID++
	inv.ID = m.nextID
	cp := *inv
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *stubInvoiceStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *stubInvoiceStore) List(ctx context.Context, tenantID int64) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range m.invoices {
		if inv.TenantID == tenantID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *stubInvoiceStore) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range m.invoices {
		if inv.TenantID == tenantID && inv.ClientID == clientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *stubInvoiceStore) Update(ctx context.Context, inv *domain.Invoice) error {
	existing, ok := m.invoices[inv.ID]
	if !ok || existing.TenantID != inv.TenantID {
		return store.ErrNotFound
	}
	cp := *inv
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *stubInvoiceStore) Delete(ctx context.Context, id, tenantID int64) error {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}

func (m *stubInvoiceStore) UpdatePayment(ctx context.Context, id, tenantID int64, amountPaid decimal.Decimal, status domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	inv.AmountPaid = amountPaid
	inv.Status = status
	cp := *inv
	return &cp, nil
}

func invoiceRouter(h *InvoiceHandler, tenant *int64) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if tenant != nil {
				req = req.WithContext(middleware.WithTenantID(req.Context(), *tenant))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Post("/api/invoice", h.Create)
	return r
}

func newInvoiceTestRouter(t *testing.T) http.Handler {
	t.Helper()
	clients := newStubClientStore()
	if err := clients.Create(context.Background(), &domain.Client{TenantID: 1, Name: "Acme Builders", Email: "info@acme.test"}); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	h := NewInvoiceHandler(service.NewInvoiceService(newStubInvoiceStore(), clients))
	tenant := int64(1)
	return invoiceRouter(h, &tenant)
}

func TestInvoiceHandler_RejectsOutOfRangeInput(t *testing.T) {
	srv := newInvoiceTestRouter(t)

	build := func(number, taxRate, amountPaid, qty, price string) string {
		return strings.NewReplacer(
			"%NUM%", number, "%TAX%", taxRate, "%PAID%", amountPaid, "%QTY%", qty, "%PRICE%", price,
		).Replace(`{"invoice_number":"%NUM%","client_id":1,"invoice_date":"2026-01-10T00:00:00Z","due_date":"2026-02-10T00:00:00Z","tax_rate":"%TAX%","amount_paid":"%PAID%","items":[{"description":"concrete pour","quantity":"%QTY%","unit_price":"%PRICE%"}]}`)
	}

	cases := []struct {
		name string
		body string
	}{
		{"negative quantity", build("INV-1", "10", "0", "-3", "100")},
		{"negative unit price", build("INV-1", "10", "0", "2", "-50")},
		{"tax rate over 100", build("INV-1", "150", "0", "2", "100")},
		{"negative tax rate", build("INV-1", "-50", "0", "2", "100")},
		{"negative amount paid", build("INV-1", "10", "-1", "2", "100")},
		{"overlong invoice number", build(strings.Repeat("9", 51), "10", "0", "2", "100")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			var fault respond.ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &fault); err != nil {
				t.Fatalf("decode fault: %v", err)
			}
			if fault.Error != "BadRequest" {
				t.Fatalf("unexpected fault category %q", fault.Error)
			}
		})
	}
}

func TestInvoiceHandler_CreateWithinBounds(t *testing.T) {
	srv := newInvoiceTestRouter(t)

	body := `{"invoice_number":"INV-7","client_id":1,"invoice_date":"2026-01-10T00:00:00Z","due_date":"2026-02-10T00:00:00Z","tax_rate":"10","items":[{"description":"concrete pour","quantity":"2","unit_price":"100"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Invoice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.SubTotal.Equal(decimal.NewFromInt(200)) || !created.Total.Equal(decimal.NewFromInt(220)) {
		t.Fatalf("unexpected totals: sub=%s total=%s", created.SubTotal, created.Total)
	}
}
