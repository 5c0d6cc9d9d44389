package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Revalidator is a testify mock for model.Revalidator.
type Revalidator struct {
	mock.Mock
}

func (m *Revalidator) MarkStale(path string) {
	m.Called(path)
}
