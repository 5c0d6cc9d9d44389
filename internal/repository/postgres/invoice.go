package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
)

var _ model.InvoiceStore = (*InvoiceRepository)(nil)

type InvoiceRepository struct {
	db     *Connection
	logger *logger.Logger
}

func NewInvoiceRepository(db *Connection, logger *logger.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new invoice row. The id is generated by the store.
func (r *InvoiceRepository) Create(ctx context.Context, params model.CreateInvoiceParams) error {
	const query = `
        INSERT INTO invoices (customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4)
    `

	if _, err := r.db.Exec(ctx, query,
		params.CustomerID,
		params.AmountCents,
		params.Status,
		params.Date,
	); err != nil {
		r.logger.Error("statement failed", "op", "CreateInvoice", "error", err.Error())
		return &model.StoreError{Op: "CreateInvoice", Message: "Failed to create invoice.", Err: err}
	}
	return nil
}

// Update replaces customer, amount and status of an existing invoice.
// The date column is immutable and excluded from the update set.
func (r *InvoiceRepository) Update(ctx context.Context, params model.UpdateInvoiceParams) error {
	const query = `
        UPDATE invoices
        SET customer_id = $2, amount = $3, status = $4
        WHERE id = $1
    `

	if _, err := r.db.Exec(ctx, query,
		params.ID,
		params.CustomerID,
		params.AmountCents,
		params.Status,
	); err != nil {
		r.logger.Error("statement failed", "op", "UpdateInvoice", "error", err.Error())
		return &model.StoreError{Op: "UpdateInvoice", Message: "Failed to update invoice.", Err: err}
	}
	return nil
}

// Delete removes an invoice by id. Deleting a missing id is an idempotent
// no-op; the affected-row count is deliberately not inspected.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
        DELETE FROM invoices
        WHERE id = $1
    `

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.logger.Error("statement failed", "op", "DeleteInvoice", "error", err.Error())
		return &model.StoreError{Op: "DeleteInvoice", Message: "Failed to delete invoice.", Err: err}
	}
	return nil
}
