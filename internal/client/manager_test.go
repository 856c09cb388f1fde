package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/econpulse/bookmarkd/internal/client"
	"github.com/econpulse/bookmarkd/internal/store"
)

// failMembershipWrites drops membership PUT/DELETE requests on the floor while
// letting everything else through, simulating a flaky network mid-toggle.
type failMembershipWrites struct {
	base http.RoundTripper
}

func (f *failMembershipWrites) RoundTrip(req *http.Request) (*http.Response, error) {
	if (req.Method == http.MethodPut || req.Method == http.MethodDelete) &&
		strings.Contains(req.URL.Path, "/items/") {
		return nil, errors.New("connection reset")
	}
	return f.base.RoundTrip(req)
}

func TestManager_CreateAndLists(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	created, err := m.CreateList(ctx, "Fed Watch")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	lists, err := m.Lists(ctx)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != created.ID {
		t.Errorf("lists = %+v, want the created list", lists)
	}
}

func TestManager_CreateList_LocalLimitCheck(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < store.MaxListsPerUser; i++ {
		if _, err := c.CreateList(ctx, fmt.Sprintf("List %d", i)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	// A fresh manager learns the count from the server and rejects locally.
	m := client.NewManager(c)
	_, err := m.CreateList(ctx, "One Too Many")
	if !errors.Is(err, client.ErrListLimit) {
		t.Errorf("err = %v, want ErrListLimit", err)
	}
}

func TestManager_CreateList_LocalChecks(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	if _, err := m.CreateList(ctx, "Houston Deals"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.CreateList(ctx, "Houston Deals"); !errors.Is(err, client.ErrDuplicateName) {
		t.Errorf("duplicate err = %v, want ErrDuplicateName", err)
	}
	if lists, err := m.Lists(ctx); err != nil || len(lists) != 1 {
		t.Errorf("lists = %v (err %v), want exactly 1", lists, err)
	}
	if _, err := m.CreateList(ctx, "   "); !errors.Is(err, client.ErrInvalidName) {
		t.Errorf("blank name err = %v, want ErrInvalidName", err)
	}
}

func TestManager_ToggleMembership(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	on, err := m.ToggleMembership(ctx, list.ID, "article-42")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !on {
		t.Fatal("first toggle reported off")
	}

	ok, err := m.IsMember(ctx, list.ID, "article-42")
	if err != nil || !ok {
		t.Fatalf("IsMember = %v, %v; want true", ok, err)
	}

	// The server agrees with the cache.
	items, err := c.Members(ctx, list.ID)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(items) != 1 || items[0] != "article-42" {
		t.Fatalf("server items = %v, want [article-42]", items)
	}

	on, err = m.ToggleMembership(ctx, list.ID, "article-42")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if on {
		t.Fatal("second toggle reported on")
	}

	items, err = c.Members(ctx, list.ID)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("server items = %v, want empty", items)
	}
}

func TestManager_Toggle_BumpsItemCount(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.ToggleMembership(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	lists, err := m.Lists(ctx)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if lists[0].ItemCount != 1 {
		t.Errorf("cached item_count = %d, want 1", lists[0].ItemCount)
	}
}

func TestManager_DeleteList_MissingIsSuccess(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Doomed")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Delete it out from under the manager, then delete through the manager.
	if err := c.DeleteList(ctx, list.ID); err != nil {
		t.Fatalf("direct delete: %v", err)
	}
	if err := m.DeleteList(ctx, list.ID); err != nil {
		t.Errorf("delete of missing list: %v, want success", err)
	}

	lists, err := m.Lists(ctx)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("lists = %+v, want empty", lists)
	}
}

func TestManager_DeleteList_DropsMemberships(t *testing.T) {
	c, _ := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.ToggleMembership(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := m.DeleteList(ctx, list.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := m.MembersOf(ctx, list.ID); !errors.Is(err, client.ErrNotFound) {
		t.Errorf("MembersOf after delete err = %v, want ErrNotFound", err)
	}
	lists, err := m.Lists(ctx)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	for _, l := range lists {
		if l.ID == list.ID {
			t.Error("deleted list still cached")
		}
	}
}

func TestManager_Toggle_ReconciliationRestoresServerCount(t *testing.T) {
	_, srv := newTestServer(t)
	flaky := client.NewWithHTTPClient(srv.URL, "alice@example.com",
		&http.Client{Transport: &failMembershipWrites{base: http.DefaultTransport}})
	m := client.NewManager(flaky)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The optimistic bump happens, the write fails, and reconciliation pulls
	// the server's true count (still 0) back into the cache.
	if _, err := m.ToggleMembership(ctx, list.ID, "nl-7"); !errors.Is(err, client.ErrRemote) {
		t.Fatalf("toggle err = %v, want ErrRemote", err)
	}

	lists, err := m.Lists(ctx)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if len(lists) != 1 || lists[0].ItemCount != 0 {
		t.Errorf("reconciled lists = %+v, want one list with item_count 0", lists)
	}
}

func TestManager_Toggle_RemoteFailure(t *testing.T) {
	c, srv := newTestServer(t)
	m := client.NewManager(c)
	ctx := context.Background()

	list, err := m.CreateList(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	srv.Close()
	_, err = m.ToggleMembership(ctx, list.ID, "article-42")
	if !errors.Is(err, client.ErrRemote) {
		t.Fatalf("err = %v, want ErrRemote", err)
	}

	// Cache was dropped; the next read needs the (dead) server and fails
	// loudly instead of serving stale optimistic state.
	if _, err := m.Lists(ctx); !errors.Is(err, client.ErrRemote) {
		t.Errorf("lists err = %v, want ErrRemote", err)
	}
}
