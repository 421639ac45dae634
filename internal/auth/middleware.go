package auth

import (
	"net/http"
	"strings"

	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/respond"
)

// Middleware resolves the caller's identity on every request.
type Middleware struct {
	verifier   *Verifier
	cookieName string
	enabled    bool
}

// NewMiddleware builds the gate. With enabled false every request is a signed-in guest.
func NewMiddleware(verifier *Verifier, cookieName string, enabled bool) *Middleware {
	return &Middleware{verifier: verifier, cookieName: cookieName, enabled: enabled}
}

// Authenticate attaches an Identity when the request carries a valid token.
// Requests without one pass through anonymously.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			ctx := WithIdentity(r.Context(), Identity{UserID: GuestUserID, Name: "Guest", Guest: true})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token := m.token(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := m.verifier.Verify(token)
		if err != nil {
			logging.FromContext(r.Context()).WithError(err).Debug("rejected identity token")
			next.ServeHTTP(w, r)
			return
		}
		ctx := WithIdentity(r.Context(), id)
		ctx = logging.WithContext(ctx, logging.FromContext(ctx).WithField("user_id", id.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSignedIn answers 401 for API and socket paths and redirects pages to
// the sign-in route.
func (m *Middleware) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/ws/") {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		http.Redirect(w, r, "/sign-in", http.StatusFound)
	})
}

func (m *Middleware) token(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(m.cookieName); err == nil {
		return c.Value
	}
	return ""
}
