package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/econpulse/bookmarkd/internal/api"
	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/client"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/store"
	"github.com/econpulse/bookmarkd/internal/testutil"
)

// stubVerifier accepts any bearer token and treats it as the caller's email.
type stubVerifier struct{}

func (stubVerifier) VerifyIDToken(_ context.Context, raw string) (*auth.Claims, error) {
	return &auth.Claims{Issuer: "test", Subject: "sub-" + raw, Email: raw, Name: "Test User"}, nil
}

// newTestServer spins up a real API server over an in-memory SQLite database
// and returns a Client authenticated as alice.
func newTestServer(t *testing.T) (*client.Client, *httptest.Server) {
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

	srv := httptest.NewServer(sm.LoadAndSave(router))
	t.Cleanup(srv.Close)

	return client.New(srv.URL, "alice@example.com"), srv
}
