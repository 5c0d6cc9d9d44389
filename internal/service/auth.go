package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
	"github.com/acmedash/invoicer-server/internal/validation"
)

// dummyHash is compared when no user matches the email, so the missing-user
// and wrong-password paths take comparable time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Auth decides login success against stored credentials.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// Authorize validates the credential shape, looks the user up and checks the
// submitted password against the stored bcrypt hash. Every negative path
// returns model.ErrInvalidCredentials: callers cannot tell an unknown email
// from a wrong password.
func (a *Auth) Authorize(ctx context.Context, creds validation.Credentials) (model.User, error) {
	if err := creds.Validate(); err != nil {
		a.logger.Info("Invalid credentials")
		return model.User{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByEmail(ctx, creds.Email)
	if errors.Is(err, model.ErrNotFound) {
		// Burn a hash comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
		a.logger.Info("Invalid credentials")
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		a.logger.Info("Invalid credentials")
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// Login authorizes the credentials and issues a session token for the user.
func (a *Auth) Login(ctx context.Context, creds validation.Credentials) (model.Session, error) {
	user, err := a.Authorize(ctx, creds)
	if err != nil {
		return model.Session{}, err
	}

	token, err := a.tokens.GenerateSessionToken(user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return model.Session{Token: token, User: user}, nil
}
