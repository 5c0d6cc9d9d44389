package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/service"
	"github.com/acmedash/invoicer-server/internal/validation"
)

// InvoiceService defines invoice mutation operations.
type InvoiceService interface {
	Create(ctx context.Context, form validation.Form) (*validation.Result, error)
	Update(ctx context.Context, id uuid.UUID, form validation.Form) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Invoice handles HTTP form submissions for invoice mutations.
type Invoice struct {
	service InvoiceService
	logger  *logger.Logger
}

// NewInvoice creates a new Invoice handler.
func NewInvoice(service InvoiceService, logger *logger.Logger) *Invoice {
	return &Invoice{
		service: service,
		logger:  logger,
	}
}

// Create handles the invoice creation form. Validation and persistence
// failures come back as values and are rendered for the user; success
// redirects to the invoices list.
func (h *Invoice) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	res, err := h.service.Create(r.Context(), form)
	if err != nil {
		handleError(w, err)
		return
	}
	if res != nil {
		code := http.StatusUnprocessableEntity
		if len(res.Errors) == 0 {
			// Message-only failure: the insert itself failed.
			code = http.StatusInternalServerError
		}
		writeJSON(w, code, res)
		return
	}

	http.Redirect(w, r, service.InvoicesPath, http.StatusSeeOther)
}

// Update handles the invoice edit form for a single invoice id.
func (h *Invoice) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	form, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.service.Update(r.Context(), id, form); err != nil {
		h.logger.Error("invoice update failed", "id", id, "error", err.Error())
		handleError(w, err)
		return
	}

	http.Redirect(w, r, service.InvoicesPath, http.StatusSeeOther)
}

// Delete removes an invoice. No redirect: deletes are issued from the list
// view itself.
func (h *Invoice) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("invoice delete failed", "id", id, "error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
