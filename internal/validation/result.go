package validation

// Form is raw string-keyed input as it arrives from an HTML form submission.
type Form map[string]string

// Result reports a failed validation: per-field human-readable messages plus
// an optional top-level message. It is handed back to the caller as a value
// for re-rendering the form, never raised as an error.
type Result struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func (r *Result) add(field, msg string) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	r.Errors[field] = append(r.Errors[field], msg)
}
