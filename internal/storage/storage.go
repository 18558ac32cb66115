package storage

import (
	"errors"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// MaxEntries is the retention cap: no backend holds more rows than this
// after a completed Insert.
const MaxEntries = 5

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Storage defines the interface for mood entry persistence.
//
// Insert validates the entry, appends it and then evicts entries with the
// oldest date until at most MaxEntries remain. The three steps run as one
// atomic unit. Eviction is keyed on the entry date, not on insertion order,
// so a back-dated entry can be evicted by its own insert.
type Storage interface {
	Insert(e mood.Entry) error
	// Recent returns up to limit entries, most recent date first.
	// A limit of zero or less returns an empty slice.
	Recent(limit int) ([]mood.Entry, error)
	// ClearAll removes every entry. Clearing an empty store is a no-op.
	ClearAll() error
	Count() (int, error)
	Close() error
}

// Validate checks e and wraps any failure with ErrValidation while keeping
// the mood package cause visible to errors.Is.
func Validate(e mood.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
