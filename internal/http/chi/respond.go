package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/internal/session"
	"github.com/marcelsud/bookshelf/internal/user"
)

type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse carries one message per rejected field
type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps domain errors to status codes; anything unknown is logged and hidden
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var bookErr *book.ValidationError
	var userErr *user.ValidationError
	switch {
	case errors.As(err, &bookErr):
		writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: bookErr.Fields})
	case errors.As(err, &userErr):
		writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: userErr.Fields})
	case errors.Is(err, book.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "book not found"})
	case errors.Is(err, user.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Email already registered"})
	case errors.Is(err, user.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	default:
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
