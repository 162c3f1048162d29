package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenant_id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      int64           `json:"client_id"`
	ProjectID     *int64          `json:"project_id,omitempty"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	SubTotal      decimal.Decimal `json:"sub_total"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceItem is a line on an invoice. Items live and die with their
// invoice; deleting the invoice removes them.
type InvoiceItem struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Balance is the amount still owed on the invoice.
func (i *Invoice) Balance() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}

// ComputeTotals recomputes each item total as quantity*unit_price, then
// derives the invoice aggregates from them. Invariants:
//
//	sub_total  = Σ item.total
//	tax_amount = sub_total * tax_rate / 100
//	total      = sub_total + tax_amount
//
// Must be called whenever items change.
func (i *Invoice) ComputeTotals() {
	subTotal := decimal.Zero
	for idx := range i.Items {
		item := &i.Items[idx]
		item.Total = item.Quantity.Mul(item.UnitPrice)
		subTotal = subTotal.Add(item.Total)
	}
	i.SubTotal = subTotal
	i.TaxAmount = subTotal.Mul(i.TaxRate).Div(decimal.NewFromInt(100))
	i.Total = i.SubTotal.Add(i.TaxAmount)
}

// ApplyPayment accumulates a payment and derives the resulting status:
// fully paid wins, otherwise past due date means overdue, otherwise the
// invoice counts as sent.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, now time.Time) {
	i.AmountPaid = i.AmountPaid.Add(amount)

	switch {
	case i.AmountPaid.GreaterThanOrEqual(i.Total):
		i.Status = InvoicePaid
	case i.DueDate.Before(now):
		i.Status = InvoiceOverdue
	default:
		i.Status = InvoiceSent
	}
}
