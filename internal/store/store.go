package store

import (
	"context"
	"errors"
	"strings"
)

// MaxListsPerUser caps how many bookmark lists a single user may own.
const MaxListsPerUser = 10

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrListLimit is returned when a user at the list cap tries to create another.
	ErrListLimit = errors.New("maximum number of bookmark lists reached")

	// ErrDuplicateName is returned when a list name collides with an existing
	// list belonging to the same user.
	ErrDuplicateName = errors.New("a bookmark list with this name already exists")

	// ErrAlreadyInList is returned when adding an item that is already a member.
	ErrAlreadyInList = errors.New("item is already in this list")

	// ErrNotInList is returned when removing an item that is not a member.
	ErrNotInList = errors.New("item is not in this list")
)

// ListStoreIface exposes all bookmark-list data operations.
// Handlers never query the DB directly; all access goes through this interface.
type ListStoreIface interface {
	Create(ctx context.Context, userID, name string) (*List, error)
	GetByUser(ctx context.Context, userID, listID string) (*List, error)
	ListByUser(ctx context.Context, userID string) ([]*List, error)
	Rename(ctx context.Context, userID, listID, name string) (*List, error)
	Delete(ctx context.Context, userID, listID string) error
}

// MembershipStoreIface exposes item-in-list membership operations.
type MembershipStoreIface interface {
	Add(ctx context.Context, listID, itemID string) error
	Remove(ctx context.Context, listID, itemID string) error
	Members(ctx context.Context, listID string) ([]string, error)
	Contains(ctx context.Context, listID, itemID string) (bool, error)
	ListsForItem(ctx context.Context, userID, itemID string) ([]string, error)
}

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}

// isForeignKeyError checks whether err indicates a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
