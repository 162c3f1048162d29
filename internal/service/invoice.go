package service

import (
	"context"
	"errors"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/store"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceClient   = errors.New("referenced client does not exist in this tenant")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

type InvoiceService struct {
	store   domain.InvoiceStore
	clients domain.ClientStore
	now     func() time.Time
}

func NewInvoiceService(s domain.InvoiceStore, clients domain.ClientStore) *InvoiceService {
	return &InvoiceService{store: s, clients: clients, now: time.Now}
}

// Create stamps the tenant, recomputes item totals and invoice
// aggregates, then persists invoice and items atomically.
func (s *InvoiceService) Create(ctx context.Context, tenantID int64, inv *domain.Invoice) error {
	if _, err := s.clients.GetByID(ctx, inv.ClientID, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvoiceClient
		}
		return err
	}

	inv.TenantID = tenantID
	if inv.Status == "" {
		inv.Status = domain.InvoiceDraft
	}
	inv.ComputeTotals()
	return s.store.Create(ctx, inv)
}

func (s *InvoiceService) GetByID(ctx context.Context, id, tenantID int64) (*domain.Invoice, error) {
	inv, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) List(ctx context.Context, tenantID int64) ([]domain.Invoice, error) {
	return s.store.List(ctx, tenantID)
}

func (s *InvoiceService) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Invoice, error) {
	return s.store.ListByClient(ctx, clientID, tenantID)
}

// Update replaces mutable fields and the full item set; aggregates are
// recomputed from the incoming items so they can never drift.
func (s *InvoiceService) Update(ctx context.Context, id, tenantID int64, inv *domain.Invoice) (*domain.Invoice, error) {
	existing, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if inv.ClientID != existing.ClientID {
		if _, err := s.clients.GetByID(ctx, inv.ClientID, tenantID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrInvoiceClient
			}
			return nil, err
		}
	}

	existing.InvoiceNumber = inv.InvoiceNumber
	existing.ClientID = inv.ClientID
	existing.ProjectID = inv.ProjectID
	existing.InvoiceDate = inv.InvoiceDate
	existing.DueDate = inv.DueDate
	existing.TaxRate = inv.TaxRate
	existing.AmountPaid = inv.AmountPaid
	existing.Status = inv.Status
	existing.Notes = inv.Notes
	existing.Items = inv.Items
	existing.ComputeTotals()

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id, tenantID int64) error {
	err := s.store.Delete(ctx, id, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvoiceNotFound
	}
	return err
}

// RecordPayment accumulates a payment and derives the resulting status.
func (s *InvoiceService) RecordPayment(ctx context.Context, id, tenantID int64, amount decimal.Decimal) (*domain.Invoice, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	inv, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	inv.ApplyPayment(amount, s.now())

	updated, err := s.store.UpdatePayment(ctx, id, tenantID, inv.AmountPaid, inv.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return updated, nil
}
