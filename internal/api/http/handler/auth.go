package handler

import (
	"context"
	"net/http"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
	"github.com/acmedash/invoicer-server/internal/validation"
)

// AuthService defines login operations.
type AuthService interface {
	Login(ctx context.Context, creds validation.Credentials) (model.Session, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Login authenticates submitted credentials and returns a session token.
// All failed attempts answer 401 regardless of the reason.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	creds := validation.Credentials{
		Email:    form["email"],
		Password: form["password"],
	}

	session, err := h.service.Login(r.Context(), creds)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: session.Token,
		Email: session.User.Email,
		Name:  session.User.Name,
	})
}
