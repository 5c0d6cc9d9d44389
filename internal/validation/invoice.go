package validation

import (
	"fmt"
	"strconv"

	"github.com/acmedash/invoicer-server/internal/model"
)

// User-facing messages for invoice form failures.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgMissingFields  = "Missing fields. Failed to create invoice."
)

// InvoiceInput is the typed, coerced result of validating invoice form input.
// Amount is still in major currency units; conversion to cents happens at
// write time.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     model.InvoiceStatus
}

// ParseInvoiceForm validates raw form input for invoice writes. A nil Result
// means the input is valid. The invoice id and date are never read from the
// form: the store generates the id and the server clock supplies the date.
func ParseInvoiceForm(form Form) (InvoiceInput, *Result) {
	var in InvoiceInput
	res := &Result{}

	in.CustomerID = form["customerId"]
	if in.CustomerID == "" {
		res.add("customerId", MsgSelectCustomer)
	}

	amount, err := strconv.ParseFloat(form["amount"], 64)
	if err != nil || amount <= 0 {
		res.add("amount", MsgAmountTooSmall)
	}
	in.Amount = amount

	in.Status = model.InvoiceStatus(form["status"])
	if !in.Status.Valid() {
		res.add("status", MsgSelectStatus)
	}

	if len(res.Errors) > 0 {
		res.Message = MsgMissingFields
		return InvoiceInput{}, res
	}

	return in, nil
}

// MustParseInvoiceForm is the strict variant, used where malformed input is a
// caller bug rather than a user mistake. The returned error wraps
// model.ErrMalformedInput and aborts the request.
func MustParseInvoiceForm(form Form) (InvoiceInput, error) {
	in, res := ParseInvoiceForm(form)
	if res != nil {
		return InvoiceInput{}, fmt.Errorf("%w: %v", model.ErrMalformedInput, res.Errors)
	}
	return in, nil
}
