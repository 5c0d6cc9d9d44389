package handler

import (
	"encoding/json"
	"net/http"

	"github.com/acmedash/invoicer-server/internal/validation"
)

// parseForm flattens a submitted form into the validation layer's input
// shape. Repeated keys keep their first value, as a browser submit would.
func parseForm(r *http.Request) (validation.Form, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := make(validation.Form, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	return form, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
