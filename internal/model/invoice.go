package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether the status is one of the known enum values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// InvoiceStore defines persistence operations for invoices.
type InvoiceStore interface {
	Create(ctx context.Context, params CreateInvoiceParams) error
	Update(ctx context.Context, params UpdateInvoiceParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Invoice represents a stored invoice row. Amount is kept in integer cents;
// the decimal-to-cents conversion happens once, at write time.
type Invoice struct {
	ID          uuid.UUID
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
	Date        time.Time
}

// CreateInvoiceParams carries validated, already-transformed values for an
// insert. The id is generated by the store; the date by the server clock.
type CreateInvoiceParams struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
	Date        time.Time
}

// UpdateInvoiceParams carries a full-field replace for an existing invoice.
// Date is immutable after creation and intentionally absent.
type UpdateInvoiceParams struct {
	ID          uuid.UUID
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
}
