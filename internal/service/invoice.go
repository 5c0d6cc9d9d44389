package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
	"github.com/acmedash/invoicer-server/internal/validation"
)

// InvoicesPath is the cached view path invalidated after every write and the
// redirect target after create and update.
const InvoicesPath = "/dashboard/invoices"

// Invoice orchestrates validated invoice writes and their side effects.
type Invoice struct {
	invoiceStore model.InvoiceStore
	revalidator  model.Revalidator
	logger       *logger.Logger
	now          func() time.Time
}

func NewInvoice(
	invoiceStore model.InvoiceStore,
	revalidator model.Revalidator,
	logger *logger.Logger,
) *Invoice {
	return &Invoice{
		invoiceStore: invoiceStore,
		revalidator:  revalidator,
		logger:       logger,
		now:          time.Now,
	}
}

// Create validates raw form input and inserts a new invoice. A non-nil Result
// is a user-facing failure for the caller to re-render: either per-field
// validation messages or, when the insert itself fails, a message-only value.
// A nil, nil return means the write succeeded and the invoices view was
// invalidated; the caller should redirect to InvoicesPath.
func (s *Invoice) Create(ctx context.Context, form validation.Form) (*validation.Result, error) {
	input, res := validation.ParseInvoiceForm(form)
	if res != nil {
		return res, nil
	}

	params := model.CreateInvoiceParams{
		CustomerID:  input.CustomerID,
		AmountCents: toCents(input.Amount),
		Status:      input.Status,
		Date:        dateOnly(s.now()),
	}

	if err := s.invoiceStore.Create(ctx, params); err != nil {
		var storeErr *model.StoreError
		if errors.As(err, &storeErr) {
			return &validation.Result{Message: storeErr.Message}, nil
		}
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.revalidator.MarkStale(InvoicesPath)
	return nil, nil
}

// Update strictly parses the form and replaces customer, amount and status of
// the invoice. Unlike Create, a parse failure here is a contract violation and
// aborts the request, as does a persistence failure.
func (s *Invoice) Update(ctx context.Context, id uuid.UUID, form validation.Form) error {
	input, err := validation.MustParseInvoiceForm(form)
	if err != nil {
		return err
	}

	params := model.UpdateInvoiceParams{
		ID:          id,
		CustomerID:  input.CustomerID,
		AmountCents: toCents(input.Amount),
		Status:      input.Status,
	}

	if err := s.invoiceStore.Update(ctx, params); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	s.revalidator.MarkStale(InvoicesPath)
	return nil
}

// Delete removes the invoice and invalidates the invoices view. No redirect
// is reported: deletes are issued from within the list view.
func (s *Invoice) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.invoiceStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.revalidator.MarkStale(InvoicesPath)
	return nil
}

// toCents converts a major-unit amount to integer cents. The conversion
// happens exactly once, at write time, and is never reversed in this layer.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
