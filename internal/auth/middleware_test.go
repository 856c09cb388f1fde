package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/store"
	"github.com/econpulse/bookmarkd/internal/testutil"
)

// mockVerifier is a test double implementing auth.TokenVerifier.
type mockVerifier struct {
	verify func(ctx context.Context, raw string) (*auth.Claims, error)
}

func (m *mockVerifier) VerifyIDToken(ctx context.Context, raw string) (*auth.Claims, error) {
	return m.verify(ctx, raw)
}

// userEcho responds 200 with the authenticated user's email.
func userEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user.Email))
	})
}

func newMiddlewareEnv(t *testing.T, v auth.TokenVerifier) (http.Handler, *store.UserStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	us := store.NewUserStore(db)
	sm := scs.New()
	mw := auth.NewMiddleware(sm, v, us, "admin@example.com", logger.Nop())
	return sm.LoadAndSave(mw.Authenticate(userEcho())), us
}

func TestMiddleware_ValidBearer(t *testing.T) {
	v := &mockVerifier{verify: func(_ context.Context, raw string) (*auth.Claims, error) {
		if raw != "good-token" {
			return nil, errors.New("bad signature")
		}
		return &auth.Claims{Issuer: "https://idp.example.com", Subject: "sub-1", Email: "alice@example.com", Name: "Alice"}, nil
	}}
	handler, us := newMiddlewareEnv(t, v)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Body.String(); got != "alice@example.com" {
		t.Errorf("body = %q, want the user email", got)
	}

	// The first bearer login provisioned the user.
	if _, err := us.GetByEmail(context.Background(), "alice@example.com"); err != nil {
		t.Errorf("user not provisioned: %v", err)
	}
}

func TestMiddleware_AdminEmailGetsAdminRole(t *testing.T) {
	v := &mockVerifier{verify: func(_ context.Context, _ string) (*auth.Claims, error) {
		return &auth.Claims{Issuer: "https://idp.example.com", Subject: "sub-2", Email: "admin@example.com", Name: "Admin"}, nil
	}}
	handler, us := newMiddlewareEnv(t, v)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	user, err := us.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !user.IsAdmin() {
		t.Errorf("role = %q, want admin", user.Role)
	}
}

func TestMiddleware_InvalidBearer(t *testing.T) {
	v := &mockVerifier{verify: func(_ context.Context, _ string) (*auth.Claims, error) {
		return nil, errors.New("token expired")
	}}
	handler, _ := newMiddlewareEnv(t, v)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMiddleware_NoCredentials(t *testing.T) {
	v := &mockVerifier{verify: func(_ context.Context, _ string) (*auth.Claims, error) {
		t.Fatal("verifier called without a bearer header")
		return nil, nil
	}}
	handler, _ := newMiddlewareEnv(t, v)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
