package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type InvoiceHandler struct {
	svc *service.InvoiceService
}

func NewInvoiceHandler(svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

type invoiceItemRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

type invoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required,max=50"`
	ClientID      int64                `json:"client_id" validate:"required,gt=0"`
	ProjectID     *int64               `json:"project_id"`
	InvoiceDate   time.Time            `json:"invoice_date" validate:"required"`
	DueDate       time.Time            `json:"due_date" validate:"required"`
	TaxRate       decimal.Decimal      `json:"tax_rate" validate:"gte=0,lte=100"`
	AmountPaid    decimal.Decimal      `json:"amount_paid" validate:"gte=0"`
	Status        domain.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	Notes         string               `json:"notes" validate:"max=1000"`
	Items         []invoiceItemRequest `json:"items" validate:"dive"`
}

type payInvoiceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (req *invoiceRequest) toDomain() *domain.Invoice {
	items := make([]domain.InvoiceItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return &domain.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		TaxRate:       req.TaxRate,
		AmountPaid:    req.AmountPaid,
		Status:        req.Status,
		Notes:         req.Notes,
		Items:         items,
	}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req invoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	invoice := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, invoice); err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceClient):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create invoice")
		}
		return
	}

	locationHeader(w, r, invoice.ID)
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	invoice, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get invoice")
		return
	}

	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	invoices, err := h.svc.List(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	invoices, err := h.svc.ListByClient(r.Context(), clientID, tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req invoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvoiceClient):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update invoice")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// RecordPayment applies a payment against the invoice balance and
// returns the invoice with its re-derived status.
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req payInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	invoice, err := h.svc.RecordPayment(r.Context(), id, tid, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to record payment")
		}
		return
	}

	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
