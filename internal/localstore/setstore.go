package localstore

import (
	"context"
	"sort"
	"sync"
)

// SetStore is the in-memory bookmark set with write-through persistence.
// Mutations apply to memory first and then persist the whole set; if the
// persist fails the in-memory change is kept, so the user's action is never
// silently undone, and the error is surfaced to the caller.
type SetStore struct {
	codec *Codec

	mu  sync.Mutex
	ids map[string]struct{}
}

// NewSetStore loads the persisted set and returns a store seeded with it.
func NewSetStore(ctx context.Context, codec *Codec) *SetStore {
	s := &SetStore{codec: codec, ids: make(map[string]struct{})}
	for _, id := range codec.Load(ctx) {
		s.ids[id] = struct{}{}
	}
	return s
}

// IsBookmarked reports whether id is in the set.
func (s *SetStore) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of bookmarked IDs.
func (s *SetStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the bookmarked IDs in sorted order.
func (s *SetStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// Add puts id into the set. Adding an existing id is a no-op that still
// reports success without touching storage.
func (s *SetStore) Add(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return nil
	}
	s.ids[id] = struct{}{}
	return s.persistLocked(ctx)
}

// Remove takes id out of the set. Removing an absent id is a no-op that
// still reports success without touching storage.
func (s *SetStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; !ok {
		return nil
	}
	delete(s.ids, id)
	return s.persistLocked(ctx)
}

// Toggle flips id's membership and reports the new state: true if id is now
// bookmarked. The flip survives a persist failure.
func (s *SetStore) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	return !present, s.persistLocked(ctx)
}

// Clear empties the set and removes the persisted slot.
func (s *SetStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
	return s.codec.Clear(ctx)
}

func (s *SetStore) persistLocked(ctx context.Context) error {
	return s.codec.Save(ctx, s.sortedLocked())
}

func (s *SetStore) sortedLocked() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
