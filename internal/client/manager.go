package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/econpulse/bookmarkd/internal/api"
	"github.com/econpulse/bookmarkd/internal/store"
)

// Manager keeps a local cache of the user's bookmark lists and memberships
// on top of a Client, so the dashboard can answer "is this article saved?"
// without a round trip. Mutations apply to the cache optimistically and are
// pushed to the server; when a push fails the cache is reconciled by
// reloading from the server, so it never drifts from remote state for long.
type Manager struct {
	client *Client

	mu      sync.Mutex
	loaded  bool
	lists   []api.ListResponse
	members map[string]map[string]struct{} // listID -> itemID set, lazily filled
}

func NewManager(c *Client) *Manager {
	return &Manager{client: c, members: make(map[string]map[string]struct{})}
}

// Refresh discards the cache and reloads all lists from the server.
func (m *Manager) Refresh(ctx context.Context) error {
	lists, err := m.client.Lists(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = lists
	m.members = make(map[string]map[string]struct{})
	m.loaded = true
	return nil
}

// Lists returns the user's bookmark lists, fetching them on first use.
func (m *Manager) Lists(ctx context.Context) ([]api.ListResponse, error) {
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]api.ListResponse, len(m.lists))
	copy(out, m.lists)
	return out, nil
}

// CreateList creates a new list. Name and list-count limits are checked
// locally first so obviously-doomed requests never hit the network.
func (m *Manager) CreateList(ctx context.Context, name string) (*api.ListResponse, error) {
	name, err := store.ValidateListName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	if len(m.lists) >= store.MaxListsPerUser {
		m.mu.Unlock()
		return nil, ErrListLimit
	}
	for _, l := range m.lists {
		if l.Name == name {
			m.mu.Unlock()
			return nil, ErrDuplicateName
		}
	}
	m.mu.Unlock()

	list, err := m.client.CreateList(ctx, name)
	if err != nil {
		// Another device may have raced us past the local checks.
		m.reconcile(ctx)
		return nil, err
	}

	m.mu.Lock()
	m.lists = append([]api.ListResponse{*list}, m.lists...)
	m.members[list.ID] = make(map[string]struct{})
	m.mu.Unlock()
	return list, nil
}

// RenameList changes a list's name.
func (m *Manager) RenameList(ctx context.Context, listID, name string) (*api.ListResponse, error) {
	name, err := store.ValidateListName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	list, err := m.client.RenameList(ctx, listID, name)
	if err != nil {
		m.reconcile(ctx)
		return nil, err
	}

	m.mu.Lock()
	for i := range m.lists {
		if m.lists[i].ID == listID {
			m.lists[i] = *list
			break
		}
	}
	m.mu.Unlock()
	return list, nil
}

// DeleteList removes a list. Deleting a list that is already gone counts as
// success: the end state the user asked for holds either way.
func (m *Manager) DeleteList(ctx context.Context, listID string) error {
	err := m.client.DeleteList(ctx, listID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.reconcile(ctx)
		return err
	}

	m.mu.Lock()
	for i := range m.lists {
		if m.lists[i].ID == listID {
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			break
		}
	}
	delete(m.members, listID)
	m.mu.Unlock()
	return nil
}

// IsMember reports whether itemID is in the given list, fetching that list's
// membership on first use.
func (m *Manager) IsMember(ctx context.Context, listID, itemID string) (bool, error) {
	if err := m.ensureMembers(ctx, listID); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.members[listID][itemID]
	return ok, nil
}

// ToggleMembership flips itemID's membership in listID and reports the new
// state. The cache updates before the server call so the UI reacts
// instantly; a failed push reloads remote state and returns the error.
func (m *Manager) ToggleMembership(ctx context.Context, listID, itemID string) (bool, error) {
	if err := m.ensureMembers(ctx, listID); err != nil {
		return false, err
	}

	m.mu.Lock()
	_, present := m.members[listID][itemID]
	if present {
		delete(m.members[listID], itemID)
	} else {
		m.members[listID][itemID] = struct{}{}
	}
	m.bumpCountLocked(listID, !present)
	m.mu.Unlock()

	var err error
	if present {
		err = m.client.RemoveItem(ctx, listID, itemID)
	} else {
		err = m.client.AddItem(ctx, listID, itemID)
	}
	if err != nil {
		m.reconcile(ctx)
		return !present, err
	}
	return !present, nil
}

// MembersOf returns the item IDs in a list, fetching and caching that
// list's membership on first use.
func (m *Manager) MembersOf(ctx context.Context, listID string) ([]string, error) {
	if err := m.ensureMembers(ctx, listID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.members[listID]))
	for id := range m.members[listID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// ListsForItem returns the IDs of the user's lists containing itemID,
// straight from the server.
func (m *Manager) ListsForItem(ctx context.Context, itemID string) ([]string, error) {
	return m.client.ListsForItem(ctx, itemID)
}

func (m *Manager) ensureLoaded(ctx context.Context) error {
	m.mu.Lock()
	loaded := m.loaded
	m.mu.Unlock()
	if loaded {
		return nil
	}
	return m.Refresh(ctx)
}

func (m *Manager) ensureMembers(ctx context.Context, listID string) error {
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	_, ok := m.members[listID]
	m.mu.Unlock()
	if ok {
		return nil
	}

	items, err := m.client.Members(ctx, listID)
	if err != nil {
		return err
	}

	set := make(map[string]struct{}, len(items))
	for _, id := range items {
		set[id] = struct{}{}
	}
	m.mu.Lock()
	m.members[listID] = set
	m.mu.Unlock()
	return nil
}

func (m *Manager) bumpCountLocked(listID string, added bool) {
	for i := range m.lists {
		if m.lists[i].ID != listID {
			continue
		}
		if added {
			m.lists[i].ItemCount++
		} else if m.lists[i].ItemCount > 0 {
			m.lists[i].ItemCount--
		}
		return
	}
}

// reconcile reloads remote state after a failed mutation. A reload failure
// just drops the cache; the next read repopulates it.
func (m *Manager) reconcile(ctx context.Context) {
	if err := m.Refresh(ctx); err != nil {
		m.mu.Lock()
		m.loaded = false
		m.members = make(map[string]map[string]struct{})
		m.mu.Unlock()
	}
}
