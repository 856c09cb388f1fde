package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/econpulse/bookmarkd/internal/api"
	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/store"
	"github.com/econpulse/bookmarkd/internal/testutil"
)

// stubVerifier accepts any bearer token and treats it as the caller's email.
type stubVerifier struct{}

func (stubVerifier) VerifyIDToken(_ context.Context, raw string) (*auth.Claims, error) {
	return &auth.Claims{Issuer: "test", Subject: "sub-" + raw, Email: raw, Name: "Test User"}, nil
}

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router      http.Handler
	Lists       *store.ListStore
	Memberships *store.MembershipStore
	Users       *store.UserStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores and the real auth
// middleware backed by a stub token verifier.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	ls := store.NewListStore(db)
	ms := store.NewMembershipStore(db)
	us := store.NewUserStore(db)

	sm := scs.New()
	mw := auth.NewMiddleware(sm, stubVerifier{}, us, "", logger.Nop())

	router := api.NewRouter(api.Deps{
		Auth:        mw,
		Lists:       ls,
		Memberships: ms,
		Log:         logger.Nop(),
	})

	return &testEnv{
		Router:      sm.LoadAndSave(router),
		Lists:       ls,
		Memberships: ms,
		Users:       us,
	}
}

// seedUser creates (or fetches) the user the given bearer email resolves to.
func seedUser(t *testing.T, env *testEnv, email string) *store.User {
	t.Helper()
	u, err := env.Users.Upsert(context.Background(), "test", "sub-"+email, email, "Test User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, email string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+email)
	return r
}
