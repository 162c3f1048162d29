package store

import (
	"context"
	"errors"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// InvoiceStore persists invoices together with their line items. Item
// replacement and the stored aggregates always change in one
// transaction, so a concurrent reader never sees items that disagree
// with the totals.
type InvoiceStore struct {
	db *pgxpool.Pool
}

func NewInvoiceStore(db *pgxpool.Pool) *InvoiceStore {
	return &InvoiceStore{db: db}
}

const invoiceColumns = `id, tenant_id, invoice_number, client_id, project_id,
	invoice_date, due_date, sub_total, tax_rate, tax_amount, total,
	amount_paid, status, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	err := row.Scan(&inv.ID, &inv.TenantID, &inv.InvoiceNumber, &inv.ClientID,
		&inv.ProjectID, &inv.InvoiceDate, &inv.DueDate, &inv.SubTotal, &inv.TaxRate,
		&inv.TaxAmount, &inv.Total, &inv.AmountPaid, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceStore) Create(ctx context.Context, inv *domain.Invoice) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices (tenant_id, invoice_number, client_id, project_id,
		     invoice_date, due_date, sub_total, tax_rate, tax_amount, total,
		     amount_paid, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		inv.TenantID, inv.InvoiceNumber, inv.ClientID, inv.ProjectID,
		inv.InvoiceDate, inv.DueDate, inv.SubTotal, inv.TaxRate, inv.TaxAmount,
		inv.Total, inv.AmountPaid, inv.Status, inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return constraintErr(err)
	}

	if err := insertItems(ctx, tx, inv.ID, inv.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *InvoiceStore) GetByID(ctx context.Context, id, tenantID int64) (*domain.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.loadItems(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceStore) List(ctx context.Context, tenantID int64) ([]domain.Invoice, error) {
	return s.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE tenant_id = $1 ORDER BY id`,
		tenantID)
}

func (s *InvoiceStore) ListByClient(ctx context.Context, clientID, tenantID int64) ([]domain.Invoice, error) {
	return s.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		 WHERE tenant_id = $1 AND client_id = $2
		 ORDER BY id`,
		tenantID, clientID)
}

// list returns invoices without their items; aggregates are stored
// columns so the summaries stay accurate. GetByID loads the items.
func (s *InvoiceStore) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

// Update overwrites the invoice and replaces its full item set in one
// transaction.
func (s *InvoiceStore) Update(ctx context.Context, inv *domain.Invoice) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE invoices
		 SET invoice_number = $1, client_id = $2, project_id = $3,
		     invoice_date = $4, due_date = $5, sub_total = $6, tax_rate = $7,
		     tax_amount = $8, total = $9, amount_paid = $10, status = $11,
		     notes = $12, updated_at = NOW()
		 WHERE id = $13 AND tenant_id = $14
		 RETURNING updated_at`,
		inv.InvoiceNumber, inv.ClientID, inv.ProjectID, inv.InvoiceDate,
		inv.DueDate, inv.SubTotal, inv.TaxRate, inv.TaxAmount, inv.Total,
		inv.AmountPaid, inv.Status, inv.Notes, inv.ID, inv.TenantID,
	).Scan(&inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return constraintErr(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, inv.ID, inv.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *InvoiceStore) Delete(ctx context.Context, id, tenantID int64) error {
	// invoice_items cascade on delete
	tag, err := s.db.Exec(ctx,
		`DELETE FROM invoices WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *InvoiceStore) UpdatePayment(ctx context.Context, id, tenantID int64, amountPaid decimal.Decimal, status domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRow(ctx,
		`UPDATE invoices
		 SET amount_paid = $1, status = $2, updated_at = NOW()
		 WHERE id = $3 AND tenant_id = $4
		 RETURNING `+invoiceColumns,
		amountPaid, status, id, tenantID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.loadItems(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceStore) loadItems(ctx context.Context, inv *domain.Invoice) error {
	rows, err := s.db.Query(ctx,
		`SELECT id, invoice_id, description, quantity, unit_price, total
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`,
		inv.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return err
		}
		inv.Items = append(inv.Items, item)
	}
	return rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem) error {
	for i := range items {
		item := &items[i]
		item.InvoiceID = invoiceID
		err := tx.QueryRow(ctx,
			`INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			invoiceID, item.Description, item.Quantity, item.UnitPrice, item.Total,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
