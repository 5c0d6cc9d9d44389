package handler

import (
	"errors"
	"net/http"

	"github.com/acmedash/invoicer-server/internal/model"
)

// handleError maps service errors to HTTP responses. Store errors surface
// only their generic message; everything else collapses to a bare status.
func handleError(w http.ResponseWriter, err error) {
	var storeErr *model.StoreError

	switch {
	case errors.As(err, &storeErr):
		http.Error(w, storeErr.Message, http.StatusInternalServerError)
	case errors.Is(err, model.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
