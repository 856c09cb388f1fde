package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/econpulse/bookmarkd/internal/store"
)

func TestMembershipStore_AddAndMembers(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	list, err := ls.Create(ctx, userID, "reading")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ms.Add(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	members, err := ms.Members(ctx, list.ID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 1 || members[0] != "article-42" {
		t.Errorf("members = %v, want [article-42]", members)
	}
}

func TestMembershipStore_Add_Duplicate(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	list, err := ls.Create(ctx, userID, "reading")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ms.Add(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ms.Add(ctx, list.ID, "article-42"); !errors.Is(err, store.ErrAlreadyInList) {
		t.Errorf("Add duplicate = %v, want ErrAlreadyInList", err)
	}

	members, err := ms.Members(ctx, list.ID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("len = %d, want 1", len(members))
	}
}

func TestMembershipStore_Add_MissingList(t *testing.T) {
	_, ms, _, _ := newTestEnv(t)
	ctx := context.Background()

	err := ms.Add(ctx, "nonexistent-list", "article-42")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Add to missing list = %v, want ErrNotFound", err)
	}
}

func TestMembershipStore_Remove(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	list, err := ls.Create(ctx, userID, "reading")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ms.Add(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := ms.Remove(ctx, list.ID, "article-42"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := ms.Remove(ctx, list.ID, "article-42"); !errors.Is(err, store.ErrNotInList) {
		t.Errorf("Remove absent = %v, want ErrNotInList", err)
	}
}

func TestMembershipStore_Contains(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	list, err := ls.Create(ctx, userID, "reading")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ms.Add(ctx, list.ID, "nl-7"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ok, err := ms.Contains(ctx, list.ID, "nl-7")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Error("Contains(nl-7) = false, want true")
	}

	ok, err = ms.Contains(ctx, list.ID, "nl-8")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if ok {
		t.Error("Contains(nl-8) = true, want false")
	}
}

func TestMembershipStore_CascadeDelete(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	list, err := ls.Create(ctx, userID, "doomed")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ms.Add(ctx, list.ID, "article-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ms.Add(ctx, list.ID, "article-2"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := ls.Delete(ctx, userID, list.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	members, err := ms.Members(ctx, list.ID)
	if err != nil {
		t.Fatalf("Members after delete: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("members after cascade = %v, want empty", members)
	}
}

func TestMembershipStore_ListsForItem(t *testing.T) {
	ls, ms, _, userID := newTestEnv(t)
	ctx := context.Background()

	a, err := ls.Create(ctx, userID, "alpha")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := ls.Create(ctx, userID, "beta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ms.Add(ctx, a.ID, "article-42"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ms.Add(ctx, b.ID, "article-42"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ids, err := ms.ListsForItem(ctx, userID, "article-42")
	if err != nil {
		t.Fatalf("ListsForItem: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("len = %d, want 2", len(ids))
	}
}
