package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmedash/invoicer-server/internal/model"
	"github.com/acmedash/invoicer-server/internal/service"
	"github.com/acmedash/invoicer-server/internal/testutil"
	"github.com/acmedash/invoicer-server/internal/validation"
)

type fakeInvoiceService struct {
	createRes *validation.Result
	createErr error
	updateErr error
	deleteErr error

	gotForm validation.Form
	gotID   uuid.UUID
}

func (f *fakeInvoiceService) Create(_ context.Context, form validation.Form) (*validation.Result, error) {
	f.gotForm = form
	return f.createRes, f.createErr
}

func (f *fakeInvoiceService) Update(_ context.Context, id uuid.UUID, form validation.Form) error {
	f.gotID = id
	f.gotForm = form
	return f.updateErr
}

func (f *fakeInvoiceService) Delete(_ context.Context, id uuid.UUID) error {
	f.gotID = id
	return f.deleteErr
}

type fakeAuthService struct {
	session model.Session
	err     error
}

func (f *fakeAuthService) Login(_ context.Context, _ validation.Credentials) (model.Session, error) {
	return f.session, f.err
}

func postForm(t *testing.T, target string, values url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestInvoice_Create_RedirectsOnSuccess(t *testing.T) {
	svc := &fakeInvoiceService{}
	h := NewInvoice(svc, testutil.MakeNoopLogger())

	req := postForm(t, "/invoices", url.Values{
		"customerId": {"abc"},
		"amount":     {"12.50"},
		"status":     {"pending"},
	})
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, service.InvoicesPath, rec.Header().Get("Location"))
	assert.Equal(t, validation.Form{
		"customerId": "abc",
		"amount":     "12.50",
		"status":     "pending",
	}, svc.gotForm)
}

func TestInvoice_Create_RendersFieldErrors(t *testing.T) {
	svc := &fakeInvoiceService{
		createRes: &validation.Result{
			Errors: map[string][]string{
				"customerId": {validation.MsgSelectCustomer},
			},
			Message: validation.MsgMissingFields,
		},
	}
	h := NewInvoice(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, postForm(t, "/invoices", url.Values{}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res validation.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, []string{validation.MsgSelectCustomer}, res.Errors["customerId"])
	assert.Equal(t, validation.MsgMissingFields, res.Message)
}

func TestInvoice_Create_RendersMessageOnlyFailure(t *testing.T) {
	svc := &fakeInvoiceService{
		createRes: &validation.Result{Message: "Failed to create invoice."},
	}
	h := NewInvoice(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, postForm(t, "/invoices", url.Values{
		"customerId": {"abc"},
		"amount":     {"12.50"},
		"status":     {"pending"},
	}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var res validation.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Failed to create invoice.", res.Message)
}

func TestInvoice_Update_RedirectsOnSuccess(t *testing.T) {
	svc := &fakeInvoiceService{}
	h := NewInvoice(svc, testutil.MakeNoopLogger())
	id := uuid.New()

	req := postForm(t, "/invoices/"+id.String(), url.Values{
		"customerId": {"abc"},
		"amount":     {"7"},
		"status":     {"paid"},
	})
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, service.InvoicesPath, rec.Header().Get("Location"))
	assert.Equal(t, id, svc.gotID)
}

func TestInvoice_Update_BadID(t *testing.T) {
	h := NewInvoice(&fakeInvoiceService{}, testutil.MakeNoopLogger())

	req := postForm(t, "/invoices/nope", url.Values{})
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoice_Update_StoreFailure(t *testing.T) {
	svc := &fakeInvoiceService{
		updateErr: &model.StoreError{Op: "UpdateInvoice", Message: "Failed to update invoice."},
	}
	h := NewInvoice(svc, testutil.MakeNoopLogger())
	id := uuid.New()

	req := postForm(t, "/invoices/"+id.String(), url.Values{
		"customerId": {"abc"},
		"amount":     {"7"},
		"status":     {"paid"},
	})
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to update invoice.")
}

func TestInvoice_Delete_NoContentOnSuccess(t *testing.T) {
	svc := &fakeInvoiceService{}
	h := NewInvoice(svc, testutil.MakeNoopLogger())
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+id.String()+"/delete", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Equal(t, id, svc.gotID)
}

func TestAuth_Login_ReturnsToken(t *testing.T) {
	svc := &fakeAuthService{
		session: model.Session{
			Token: "signed-token",
			User:  model.User{Email: "user@example.com", Name: "Ada"},
		},
	}
	h := NewAuth(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Login(rec, postForm(t, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"correct-horse"},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res loginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "user@example.com", res.Email)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	h := NewAuth(&fakeAuthService{err: model.ErrInvalidCredentials}, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Login(rec, postForm(t, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"battery-staple"},
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}
