package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// TokenVerifier verifies a raw bearer token and returns its identity claims.
// Satisfied by *Provider.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, raw string) (*Claims, error)
}

// Middleware authenticates API requests. A request may carry either a session
// cookie (the browser dashboard) or an Authorization: Bearer ID token; both
// resolve to a *store.User on the request context.
type Middleware struct {
	sessions *scs.SessionManager
	verifier TokenVerifier
	users    *store.UserStore
	admin    string
	log      logger.Logger
}

// NewMiddleware creates a new auth Middleware. adminEmail is forwarded to the
// user upsert on first bearer login.
func NewMiddleware(sm *scs.SessionManager, v TokenVerifier, us *store.UserStore, adminEmail string, log logger.Logger) *Middleware {
	return &Middleware{sessions: sm, verifier: v, users: us, admin: adminEmail, log: log}
}

// Authenticate resolves the caller's identity and sets the user on the request
// context, rejecting the request with 401 otherwise.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := m.fromSession(r); user != nil {
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
			return
		}
		if user := m.fromBearer(r); user != nil {
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func (m *Middleware) fromSession(r *http.Request) *store.User {
	userID := m.sessions.GetString(r.Context(), SessionUserIDKey)
	if userID == "" {
		return nil
	}
	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		// Session references a deleted user — destroy it.
		_ = m.sessions.Destroy(r.Context())
		return nil
	}
	return user
}

func (m *Middleware) fromBearer(r *http.Request) *store.User {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil
	}

	claims, err := m.verifier.VerifyIDToken(r.Context(), raw)
	if err != nil {
		m.log.Debug("bearer token rejected", logger.Error(err))
		return nil
	}

	user, err := m.users.Upsert(r.Context(), claims.Issuer, claims.Subject, claims.Email, claims.Name, m.admin)
	if err != nil {
		m.log.Error("user upsert on bearer login", logger.Error(err))
		return nil
	}
	return user
}

func withUser(ctx context.Context, u *store.User) context.Context {
	return context.WithValue(ctx, UserContextKey, u)
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}
