package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/store"
)

// validate checks request DTO constraints declared via struct tags.
var validate = validator.New()

// Authenticator resolves the caller's identity and puts a *store.User on the
// request context. Satisfied by *auth.Middleware; tests substitute a fake.
type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
}

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Auth        Authenticator
	Lists       store.ListStoreIface
	Memberships store.MembershipStoreIface
	Log         logger.Logger
}

// NewRouter creates a chi sub-router for /api/v1. All routes require
// authentication and return application/json.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)
	r.Use(deps.Auth.Authenticate)

	registerListRoutes(r, deps)
	registerItemRoutes(r, deps)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on
// all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
