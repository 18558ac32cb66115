package memory

import (
	"sort"
	"sync"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// Store implements storage.Storage in process memory. Entries are kept in
// insertion order.
type Store struct {
	mu      sync.RWMutex
	entries []mood.Entry
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Close is a no-op for the memory backend.
func (s *Store) Close() error {
	return nil
}

// Insert appends e and evicts the earliest-dated entries over the cap.
func (s *Store) Insert(e mood.Entry) error {
	if err := storage.Validate(e); err != nil {
		return err
	}
	e.Date = mood.Day(e.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	for len(s.entries) > storage.MaxEntries {
		oldest := 0
		for i, cur := range s.entries {
			if cur.Date.Before(s.entries[oldest].Date) {
				oldest = i
			}
		}
		s.entries = append(s.entries[:oldest], s.entries[oldest+1:]...)
	}
	return nil
}

// Recent returns up to limit entries, most recent date first. Entries with
// equal dates come out newest insert first.
func (s *Store) Recent(limit int) ([]mood.Entry, error) {
	if limit <= 0 {
		return []mood.Entry{}, nil
	}

	s.mu.RLock()
	out := make([]mood.Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ClearAll drops every entry.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	return nil
}

// Count returns the number of entries held.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
