package chi

import (
	"encoding/json"
	"net/http"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/internal/session"
	"github.com/marcelsud/bookshelf/internal/user"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

type sessionResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func postRegister(users user.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		u, err := users.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, userResponse{ID: u.ID, Username: u.Username, Email: u.Email})
	})
}

func postLogin(users user.UseCase, sessions Sessions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		u, err := users.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		token, err := sessions.Issue(r.Context(), session.Marker{Username: u.Username, Email: u.Email})
		if err != nil {
			writeError(w, r, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessions.TTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Token: token})
	})
}

// postLogout revokes the session and drops the cached catalog
func postLogout(sessions Sessions, books book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Revoke(r.Context(), tokenFrom(r)); err != nil {
			writeError(w, r, err)
			return
		}
		books.Forget(markerFrom(r.Context()).Email)
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	})
}

func getSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := markerFrom(r.Context())
		writeJSON(w, http.StatusOK, sessionResponse{Username: m.Username, Email: m.Email})
	})
}

func loginHint() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"login":    "POST /auth/login",
			"register": "POST /auth/register",
		})
	})
}
