package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrMalformedInput     = errors.New("malformed input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StoreError is the only error shape the data access layer lets escape.
// Message is generic and safe to render; the raw driver error stays in Err
// for server-side logs and never reaches a page.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
