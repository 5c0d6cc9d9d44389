package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/acmedash/invoicer-server/internal/model"
)

// InvoiceStore is a testify mock for model.InvoiceStore.
type InvoiceStore struct {
	mock.Mock
}

func (m *InvoiceStore) Create(ctx context.Context, params model.CreateInvoiceParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *InvoiceStore) Update(ctx context.Context, params model.UpdateInvoiceParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *InvoiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
