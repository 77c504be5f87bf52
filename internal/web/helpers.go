package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes: malformed input is the
// caller's fault (400), anything else is a store or internal failure (500)
// the caller may retry.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidPeriod) ||
		errors.Is(err, domain.ErrMalformedDate) ||
		errors.Is(err, domain.ErrMalformedDuration) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// userID extracts the required user query parameter.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	user := r.URL.Query().Get("user")
	if user == "" {
		badRequest(w, "user parameter is required")
		return "", false
	}
	return user, true
}

// dateParam reads an optional "YYYY-MM-DD" query parameter, falling back to
// the current UTC date. Requests inject their "today" explicitly so
// responses are deterministic under test.
func dateParam(r *http.Request, name string) (domain.Date, error) {
	if raw := r.URL.Query().Get(name); raw != "" {
		return domain.ParseDate(raw)
	}
	return domain.DateOf(time.Now()), nil
}

// decodeBody parses a JSON request body. A body that does not decode is
// always the caller's fault.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
