package chi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/marcelsud/bookshelf/internal/session"
)

const sessionCookie = "session"

type markerKey struct{}

/* guard lets a request through only with a verified session.
 * Browsers are sent to the login page, API clients get 401.
 */
func guard(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			marker, err := sessions.Verify(r.Context(), tokenFrom(r))
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) && !errors.Is(err, session.ErrInvalidToken) {
					writeError(w, r, err)
					return
				}
				deny(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), markerKey{}, marker)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
}

// tokenFrom reads a bearer token, falling back to the session cookie
func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func markerFrom(ctx context.Context) session.Marker {
	m, _ := ctx.Value(markerKey{}).(session.Marker)
	return m
}
