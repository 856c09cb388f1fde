package store

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxListNameLen is the longest allowed bookmark list name after trimming,
// in runes, matching the max=50 validator tag on the API DTOs.
const MaxListNameLen = 50

// ErrNameInvalid is returned when a list name is empty or too long.
var ErrNameInvalid = errors.New("list name must be 1-50 characters")

// ValidateListName trims surrounding whitespace and checks length bounds.
// Returns the cleaned name. Uniqueness is NOT checked here — that is handled
// at the database layer via the unique index on (user_id, name).
func ValidateListName(name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" || utf8.RuneCountInString(cleaned) > MaxListNameLen {
		return "", ErrNameInvalid
	}
	return cleaned, nil
}
