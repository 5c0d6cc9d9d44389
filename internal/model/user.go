package model

import (
	"context"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
}

// User represents a stored user. Password holds the bcrypt hash of the
// user's password; the plaintext is never persisted or logged.
type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}
