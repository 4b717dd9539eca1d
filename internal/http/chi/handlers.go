package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/internal/session"
	"github.com/marcelsud/bookshelf/internal/user"
	"github.com/rs/zerolog"
)

// Sessions is satisfied by *session.Manager
type Sessions interface {
	Issue(ctx context.Context, marker session.Marker) (string, error)
	Verify(ctx context.Context, token string) (session.Marker, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// Deps are the services behind the HTTP API
type Deps struct {
	Logger   zerolog.Logger
	Books    book.UseCase
	Users    user.UseCase
	Sessions Sessions
	// Metrics serves /metrics when set
	Metrics  http.Handler
	PageSize int
}

func Handlers(ctx context.Context, d Deps) *chi.Mux {
	if d.PageSize <= 0 {
		d.PageSize = book.DefaultPageSize
	}

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	r.Method(http.MethodGet, "/login", loginHint())

	r.Route("/auth", func(r chi.Router) {
		r.Method(http.MethodPost, "/register", postRegister(d.Users))
		r.Method(http.MethodPost, "/login", postLogin(d.Users, d.Sessions))
		r.Group(func(r chi.Router) {
			r.Use(guard(d.Sessions))
			r.Method(http.MethodPost, "/logout", postLogout(d.Sessions, d.Books))
			r.Method(http.MethodGet, "/session", getSession())
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(guard(d.Sessions))
		r.Method(http.MethodGet, "/books", getBooks(d.Books, d.PageSize))
		r.Method(http.MethodPost, "/books", postBooks(d.Books))
		r.Method(http.MethodGet, "/books/{id}", getBook(d.Books))
		r.Method(http.MethodPut, "/books/{id}", putBook(d.Books))
		r.Method(http.MethodPatch, "/books/{id}", patchBook(d.Books))
		r.Method(http.MethodDelete, "/books/{id}", deleteBook(d.Books))
		r.Method(http.MethodPost, "/books/{id}/toggle-status", toggleStatus(d.Books))
		r.Method(http.MethodPut, "/books/{id}/cover", putCover(d.Books))
		r.Method(http.MethodGet, "/stats", getStats(d.Books))
	})

	return r
}
