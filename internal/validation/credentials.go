package validation

import (
	"fmt"

	"github.com/go-playground/validator"

	"github.com/acmedash/invoicer-server/internal/model"
)

var validate = validator.New()

// Credentials is a login attempt as submitted by the user.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Validate checks the credential shape before any user lookup happens.
// A failure wraps model.ErrInvalidCredentials.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}
	return nil
}
