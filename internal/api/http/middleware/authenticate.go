package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
)

type contextKey string

const userIDKey contextKey = "userID"

// Authenticate validates bearer session tokens and injects the user ID into
// the request context. Invoice mutations are only reachable through it.
type Authenticate struct {
	tokens model.TokenManager
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header, validates the session token and
// passes the request on with the user ID in context. Missing and invalid
// tokens are both answered with a bare 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticateRequest(r)
		if err != nil {
			m.logger.Info("rejected request", "path", r.URL.Path, "error", err.Error())
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateRequest(r *http.Request) (uuid.UUID, error) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if tokenString == "" {
		return uuid.Nil, model.ErrInvalidCredentials
	}

	userID, err := m.tokens.ParseSessionToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if userID == uuid.Nil {
		return uuid.Nil, model.ErrInvalidCredentials
	}

	return userID, nil
}

// UserIDFromContext returns the authenticated user ID stored by Handle.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
