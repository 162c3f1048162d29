package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
)

func setupInvoiceTest(t *testing.T) (*InvoiceService, *mockInvoiceStore, *domain.Client) {
	t.Helper()
	invStore := newMockInvoiceStore()
	clientStore := newMockClientStore()
	svc := NewInvoiceService(invStore, clientStore)

	client := &domain.Client{TenantID: 1, Name: "Acme Builders", Email: "info@acme.test"}
	_ = clientStore.Create(context.Background(), client)
	return svc, invStore, client
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestInvoiceService_Create_RecomputesTotals(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-001",
		ClientID:      client.ID,
		DueDate:       time.Now().AddDate(0, 1, 0),
		TaxRate:       mustDec(t, "10"),
		// Claimed totals are garbage on purpose.
		SubTotal: mustDec(t, "1"),
		Total:    mustDec(t, "1"),
		Items: []domain.InvoiceItem{
			{Description: "framing", Quantity: mustDec(t, "40"), UnitPrice: mustDec(t, "20")},
			{Description: "lumber", Quantity: mustDec(t, "1"), UnitPrice: mustDec(t, "200")},
		},
	}
	if err := svc.Create(ctx, 1, inv); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !inv.SubTotal.Equal(mustDec(t, "1000")) {
		t.Fatalf("subtotal: got %s", inv.SubTotal)
	}
	if !inv.TaxAmount.Equal(mustDec(t, "100")) {
		t.Fatalf("tax: got %s", inv.TaxAmount)
	}
	if !inv.Total.Equal(mustDec(t, "1100")) {
		t.Fatalf("total: got %s", inv.Total)
	}
	if inv.Status != domain.InvoiceDraft {
		t.Fatalf("expected draft, got %s", inv.Status)
	}
	if inv.TenantID != 1 {
		t.Fatalf("expected tenant 1, got %d", inv.TenantID)
	}
}

func TestInvoiceService_Create_UnknownClient(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)

	inv := &domain.Invoice{InvoiceNumber: "INV-002", ClientID: client.ID}
	if err := svc.Create(context.Background(), 2, inv); !errors.Is(err, ErrInvoiceClient) {
		t.Fatalf("expected ErrInvoiceClient, got %v", err)
	}
}

func TestInvoiceService_Update_ReplacesItems(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-003",
		ClientID:      client.ID,
		TaxRate:       mustDec(t, "0"),
		Items: []domain.InvoiceItem{
			{Description: "old line", Quantity: mustDec(t, "1"), UnitPrice: mustDec(t, "500")},
		},
	}
	if err := svc.Create(ctx, 1, inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	in := &domain.Invoice{
		InvoiceNumber: "INV-003",
		ClientID:      client.ID,
		TaxRate:       mustDec(t, "20"),
		Status:        domain.InvoiceSent,
		Items: []domain.InvoiceItem{
			{Description: "new line", Quantity: mustDec(t, "2"), UnitPrice: mustDec(t, "100")},
		},
	}
	updated, err := svc.Update(ctx, inv.ID, 1, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Items) != 1 || updated.Items[0].Description != "new line" {
		t.Fatalf("items not replaced: %+v", updated.Items)
	}
	if !updated.SubTotal.Equal(mustDec(t, "200")) || !updated.Total.Equal(mustDec(t, "240")) {
		t.Fatalf("totals not recomputed: sub=%s total=%s", updated.SubTotal, updated.Total)
	}
}

func TestInvoiceService_RecordPayment(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	inv := &domain.Invoice{
		InvoiceNumber: "INV-004",
		ClientID:      client.ID,
		DueDate:       now.AddDate(0, 0, 30),
		TaxRate:       mustDec(t, "0"),
		Status:        domain.InvoiceSent,
		Items: []domain.InvoiceItem{
			{Description: "work", Quantity: mustDec(t, "1"), UnitPrice: mustDec(t, "1000")},
		},
	}
	if err := svc.Create(ctx, 1, inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Partial payment before the due date keeps the invoice sent.
	got, err := svc.RecordPayment(ctx, inv.ID, 1, mustDec(t, "400"))
	if err != nil {
		t.Fatalf("payment 1: %v", err)
	}
	if !got.AmountPaid.Equal(mustDec(t, "400")) || got.Status != domain.InvoiceSent {
		t.Fatalf("after 400: paid=%s status=%s", got.AmountPaid, got.Status)
	}

	// Second payment settles it.
	got, err = svc.RecordPayment(ctx, inv.ID, 1, mustDec(t, "600"))
	if err != nil {
		t.Fatalf("payment 2: %v", err)
	}
	if !got.AmountPaid.Equal(mustDec(t, "1000")) || got.Status != domain.InvoicePaid {
		t.Fatalf("after 1000: paid=%s status=%s", got.AmountPaid, got.Status)
	}
}

func TestInvoiceService_RecordPayment_Overdue(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	inv := &domain.Invoice{
		InvoiceNumber: "INV-005",
		ClientID:      client.ID,
		DueDate:       now.AddDate(0, 0, -5),
		TaxRate:       mustDec(t, "0"),
		Items: []domain.InvoiceItem{
			{Description: "work", Quantity: mustDec(t, "1"), UnitPrice: mustDec(t, "1000")},
		},
	}
	if err := svc.Create(ctx, 1, inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.RecordPayment(ctx, inv.ID, 1, mustDec(t, "100"))
	if err != nil {
		t.Fatalf("payment: %v", err)
	}
	if got.Status != domain.InvoiceOverdue {
		t.Fatalf("expected overdue, got %s", got.Status)
	}
}

func TestInvoiceService_RecordPayment_Invalid(t *testing.T) {
	svc, _, _ := setupInvoiceTest(t)
	ctx := context.Background()

	for _, amount := range []string{"0", "-5"} {
		if _, err := svc.RecordPayment(ctx, 1, 1, mustDec(t, amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestInvoiceService_RecordPayment_CrossTenant(t *testing.T) {
	svc, _, client := setupInvoiceTest(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-006",
		ClientID:      client.ID,
		Items: []domain.InvoiceItem{
			{Description: "work", Quantity: mustDec(t, "1"), UnitPrice: mustDec(t, "100")},
		},
	}
	if err := svc.Create(ctx, 1, inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.RecordPayment(ctx, inv.ID, 2, mustDec(t, "50")); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
