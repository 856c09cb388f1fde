package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// List represents a row in the bookmark_lists table. ItemCount is denormalized
// from bookmark_items at query time.
type List struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	ItemCount int       `db:"item_count"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ListStore is the sqlx-backed implementation of ListStoreIface.
type ListStore struct {
	db *sqlx.DB
}

func NewListStore(db *sqlx.DB) *ListStore {
	return &ListStore{db: db}
}

const listSelect = `
	SELECT l.id, l.user_id, l.name, l.created_at, l.updated_at,
	       COUNT(bi.item_id) AS item_count
	FROM bookmark_lists l
	LEFT JOIN bookmark_items bi ON bi.list_id = l.id`

// Create inserts a new list for userID after checking the per-user cap in the
// same transaction. On SQLite the single-connection pool serializes writers so
// the cap is strict; under READ COMMITTED on postgres/mysql two racing creates
// can both pass the count and briefly exceed it by one, which is acceptable
// for a per-user UI limit.
// Returns ErrListLimit at the cap and ErrDuplicateName on a name collision.
func (s *ListStore) Create(ctx context.Context, userID, name string) (*List, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var count int
	err = tx.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookmark_lists WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	if count >= MaxListsPerUser {
		return nil, ErrListLimit
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookmark_lists (id, user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, userID, name, now, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.GetByUser(ctx, userID, id)
}

// GetByUser returns the list matching listID owned by userID, or ErrNotFound.
// A list belonging to another user is indistinguishable from a missing one.
func (s *ListStore) GetByUser(ctx context.Context, userID, listID string) (*List, error) {
	var l List
	err := s.db.GetContext(ctx, &l, listSelect+`
		WHERE l.id = ? AND l.user_id = ?
		GROUP BY l.id`, listID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByUser returns all lists owned by userID with item counts, newest first.
func (s *ListStore) ListByUser(ctx context.Context, userID string) ([]*List, error) {
	var lists []*List
	err := s.db.SelectContext(ctx, &lists, listSelect+`
		WHERE l.user_id = ?
		GROUP BY l.id
		ORDER BY l.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Rename changes a list's name. Returns ErrNotFound if the list does not exist
// or is owned by another user, and ErrDuplicateName on a name collision.
func (s *ListStore) Rename(ctx context.Context, userID, listID, name string) (*List, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE bookmark_lists SET name = ?, updated_at = ? WHERE id = ? AND user_id = ?
	`, name, time.Now().UTC(), listID, userID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByUser(ctx, userID, listID)
}

// Delete removes a list by ID. CASCADE deletes handle bookmark_items.
// Returns ErrNotFound if the list does not exist or is owned by another user.
func (s *ListStore) Delete(ctx context.Context, userID, listID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM bookmark_lists WHERE id = ? AND user_id = ?`, listID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll returns the total number of lists across all users. Used for the
// lists_total gauge.
func (s *ListStore) CountAll(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookmark_lists`)
	return count, err
}
