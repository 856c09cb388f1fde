package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Membership represents a row in the bookmark_items junction table.
// Existence is boolean: either the (list, item) pair exists or it doesn't.
type Membership struct {
	ListID    string    `db:"list_id"`
	ItemID    string    `db:"item_id"`
	CreatedAt time.Time `db:"created_at"`
}

// MembershipStore is the sqlx-backed implementation of MembershipStoreIface.
// Item IDs are opaque strings; the dashboard uses article and newsletter UUIDs.
type MembershipStore struct {
	db *sqlx.DB
}

func NewMembershipStore(db *sqlx.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// Add inserts a membership. The composite primary key makes duplicate adds
// fail, which is reported as ErrAlreadyInList. Adding to a list that was
// deleted concurrently reports ErrNotFound.
func (s *MembershipStore) Add(ctx context.Context, listID, itemID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmark_items (list_id, item_id, created_at) VALUES (?, ?, ?)
	`, listID, itemID, time.Now().UTC())
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrAlreadyInList
		}
		if isForeignKeyError(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Remove deletes a membership. Returns ErrNotInList if the pair was absent.
func (s *MembershipStore) Remove(ctx context.Context, listID, itemID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM bookmark_items WHERE list_id = ? AND item_id = ?`, listID, itemID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotInList
	}
	return nil
}

// Members returns all item IDs in a list, oldest membership first.
func (s *MembershipStore) Members(ctx context.Context, listID string) ([]string, error) {
	items := []string{}
	err := s.db.SelectContext(ctx, &items, `
		SELECT item_id FROM bookmark_items WHERE list_id = ? ORDER BY created_at ASC, item_id ASC
	`, listID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Contains reports whether itemID is a member of listID.
func (s *MembershipStore) Contains(ctx context.Context, listID, itemID string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookmark_items WHERE list_id = ? AND item_id = ?`, listID, itemID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListsForItem returns the IDs of userID's lists that contain itemID. Used to
// pre-check boxes in the "save to list" multi-select.
func (s *MembershipStore) ListsForItem(ctx context.Context, userID, itemID string) ([]string, error) {
	ids := []string{}
	err := s.db.SelectContext(ctx, &ids, `
		SELECT bi.list_id FROM bookmark_items bi
		INNER JOIN bookmark_lists l ON l.id = bi.list_id
		WHERE l.user_id = ? AND bi.item_id = ?
		ORDER BY bi.created_at ASC
	`, userID, itemID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
