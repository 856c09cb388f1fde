package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/econpulse/bookmarkd/internal/logger"
)

// ErrStorageFailure is returned when the underlying slot rejects a write or
// clear. Reads never return it; a slot that cannot be read loads as empty.
var ErrStorageFailure = errors.New("bookmark storage failure")

// snapshot is the persisted wire format of the bookmark set.
type snapshot struct {
	IDs         []string  `json:"ids"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Codec reads and writes the bookmark set through a Slot as a single JSON
// blob of the form {"ids":[...],"lastUpdated":"..."}.
type Codec struct {
	slot Slot
	log  logger.Logger

	// now is swapped in tests.
	now func() time.Time
}

func NewCodec(slot Slot, log logger.Logger) *Codec {
	return &Codec{slot: slot, log: log, now: time.Now}
}

// Load reads the persisted bookmark IDs. It never fails: an absent slot
// loads as an empty set, and a corrupt blob is logged and discarded so one
// bad write can't wedge the client forever.
func (c *Codec) Load(ctx context.Context) []string {
	data, err := c.slot.Read(ctx)
	if err != nil {
		c.log.Warn("bookmark slot unreadable, starting empty", logger.Error(err))
		return []string{}
	}
	if data == nil {
		return []string{}
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.log.Warn("bookmark slot corrupt, starting empty", logger.Error(err))
		return []string{}
	}
	if snap.IDs == nil {
		c.log.Warn("bookmark slot missing ids field, starting empty")
		return []string{}
	}
	return snap.IDs
}

// Save persists ids with a fresh lastUpdated timestamp.
func (c *Codec) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(snapshot{IDs: ids, LastUpdated: c.now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrStorageFailure, err)
	}
	if err := c.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}

// Clear removes the persisted set entirely.
func (c *Codec) Clear(ctx context.Context) error {
	if err := c.slot.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}
